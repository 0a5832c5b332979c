package catalog

import "shopfront/internal/domain"

// defaultProducts is the demo storefront inventory.
func defaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "iPhone 15 Pro",
			Category:    domain.CategoryElectronics,
			Price:       999.99,
			Image:       "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400",
			Description: "Latest iPhone with advanced camera system and A17 Pro chip.",
			Featured:    true,
			Badge:       "New",
		},
		{
			ID:          2,
			Name:        "MacBook Air M2",
			Category:    domain.CategoryElectronics,
			Price:       1199.99,
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=400",
			Description: "Ultra-thin laptop with M2 chip for incredible performance.",
			Featured:    true,
			Badge:       "Popular",
		},
		{
			ID:          3,
			Name:        "Nike Air Max 270",
			Category:    domain.CategoryFashion,
			Price:       150.00,
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
			Description: "Comfortable running shoes with Air Max technology.",
			Featured:    true,
			Badge:       "Sale",
		},
		{
			ID:          4,
			Name:        "Levi's 501 Jeans",
			Category:    domain.CategoryFashion,
			Price:       89.99,
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400",
			Description: "Classic straight-leg jeans with perfect fit.",
		},
		{
			ID:          5,
			Name:        "Samsung 4K Smart TV",
			Category:    domain.CategoryElectronics,
			Price:       799.99,
			Image:       "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400",
			Description: "55-inch 4K Ultra HD Smart TV with Crystal Display.",
		},
		{
			ID:          6,
			Name:        "Yoga Mat Premium",
			Category:    domain.CategorySports,
			Price:       45.00,
			Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
			Description: "Non-slip yoga mat perfect for home workouts.",
			Featured:    true,
			Badge:       "Best Seller",
		},
		{
			ID:          7,
			Name:        "Coffee Maker Deluxe",
			Category:    domain.CategoryHome,
			Price:       129.99,
			Image:       "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400",
			Description: "Programmable coffee maker with thermal carafe.",
		},
		{
			ID:          8,
			Name:        "Wireless Headphones",
			Category:    domain.CategoryElectronics,
			Price:       199.99,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Description: "Noise-cancelling wireless headphones with premium sound.",
			Featured:    true,
			Badge:       "Top Rated",
		},
		{
			ID:          9,
			Name:        "Running Shorts",
			Category:    domain.CategorySports,
			Price:       35.00,
			Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
			Description: "Lightweight running shorts with built-in liner.",
		},
		{
			ID:          10,
			Name:        "Throw Pillow Set",
			Category:    domain.CategoryHome,
			Price:       59.99,
			Image:       "https://images.unsplash.com/photo-1584100936595-c0654b55a2e2?w=400",
			Description: "Decorative throw pillows for your living room.",
		},
		{
			ID:          11,
			Name:        "Gaming Mouse",
			Category:    domain.CategoryElectronics,
			Price:       79.99,
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400",
			Description: "High-precision gaming mouse with RGB lighting.",
		},
		{
			ID:          12,
			Name:        "Dumbbell Set",
			Category:    domain.CategorySports,
			Price:       89.99,
			Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
			Description: "Adjustable dumbbell set for home workouts.",
			Featured:    true,
			Badge:       "Limited",
		},
	}
}
