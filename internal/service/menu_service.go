package service

import (
	"context"
	"fmt"

	"github.com/brunecafe/cafe-service/internal/models"
	"github.com/brunecafe/cafe-service/internal/repository"
	"github.com/rs/zerolog/log"
)

type MenuService interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	SeedOnce(ctx context.Context) error
}

type menuService struct {
	menu repository.MenuRepository
}

func NewMenuService(menu repository.MenuRepository) MenuService {
	return &menuService{menu: menu}
}

func (s *menuService) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.menu.FindAll(ctx)
}

// SeedOnce inserts the catalog when the table is empty. Safe to call on
// every startup.
func (s *menuService) SeedOnce(ctx context.Context) error {
	count, err := s.menu.Count(ctx)
	if err != nil {
		return fmt.Errorf("count menu items: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := s.menu.CreateBatch(ctx, menuCatalog()); err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}

	log.Info().Int("items", len(menuCatalog())).Msg("seeded menu catalog")
	return nil
}

func menuCatalog() []models.MenuItem {
	return []models.MenuItem{
		{Category: "Pizza", Name: "Cheese & Charm (Margherita)", Price: 195},
		{Category: "Pizza", Name: "Veggie Supreme", Price: 215},
		{Category: "Pizza", Name: "Paneer Fusion", Price: 245},
		{Category: "Pizza", Name: "Fungi Feast (Mushroom)", Price: 265},
		{Category: "Bites", Name: "Cheese Garlic Bread", Price: 125},
		{Category: "Bites", Name: "Falafel Bite", Price: 155},
		{Category: "Bites", Name: "Chilli Cheese Melt Bite", Price: 155},
		{Category: "Bites", Name: "Crispy Melt Nachos", Price: 145},
		{Category: "Bites", Name: "Salted French Fries", Price: 105},
		{Category: "Bites", Name: "Peri Peri Fries", Price: 115},
		{Category: "Bites", Name: "Cheese Drizzle Fries", Price: 145},
		{Category: "Warm Sip", Name: "Belgian Hot Cocoa", Price: 125},
		{Category: "Warm Sip", Name: "Signature Bournvita", Price: 95},
		{Category: "Warm Sip", Name: "Artisan Masala Chai", Price: 55},
		{Category: "Warm Sip", Name: "Elite House Black Tea", Price: 45},
		{Category: "Warm Sip", Name: "Majestic Lemon Mint Tea", Price: 65},
		{Category: "Warm Sip", Name: "Crystal Leaf Green Tea", Price: 65},
		{Category: "Gourmet Sandwich House", Name: "Signature Veg Grill", Price: 115},
		{Category: "Gourmet Sandwich House", Name: "Classic Bombay Masala Delight", Price: 125},
		{Category: "Gourmet Sandwich House", Name: "Paneer Buzz", Price: 155},
		{Category: "Gourmet Sandwich House", Name: "Loaded Corn Cheese", Price: 135},
		{Category: "Brew Collection", Name: "Espresso Noir", Price: 95},
		{Category: "Brew Collection", Name: "Velvet Cappuccino", Price: 115},
		{Category: "Brew Collection", Name: "Caffe Latte", Price: 135},
		{Category: "Brew Collection", Name: "Mocha Milano", Price: 145},
		{Category: "Brew Collection", Name: "Americano", Price: 95},
		{Category: "Brew Collection", Name: "Hazelnut Brew", Price: 135},
		{Category: "Iced Artistry Bar", Name: "Iced Americano Supreme", Price: 115},
		{Category: "Iced Artistry Bar", Name: "Iced Cloud Latte", Price: 125},
		{Category: "Iced Artistry Bar", Name: "Mocha Ice Drip", Price: 145},
		{Category: "Iced Artistry Bar", Name: "Cold Brew Signature", Price: 125},
		{Category: "Iced Artistry Bar", Name: "Oreo Luxe Shake", Price: 125},
		{Category: "Iced Artistry Bar", Name: "KitKat Crush", Price: 135},
		{Category: "Iced Artistry Bar", Name: "Hazelnut Cold Brew", Price: 145},
	}
}
