// Package seed holds the fixed demo collections that stand in for a real
// backend database. The data is loaded into the repositories at startup.
package seed

import "github.com/LilMortal/Feastly-App/internal/models"

// Cafes returns the café catalog in display order.
func Cafes() []models.Cafe {
	return []models.Cafe{
		{
			ID:          1,
			Name:        "The Crumby Café",
			Address:     "12 Silver Street, Leicester LE1 5ET",
			Description: "A cozy café nestled in the heart of Leicester, offering freshly baked pastries, artisanal coffee, and a warm, welcoming atmosphere. Our specialty is homemade sourdough bread and seasonal fruit tarts.",
			Rating:      4.7,
			PriceLevel:  2,
			Image:       "https://images.pexels.com/photos/1855214/pexels-photo-1855214.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			CoverImage:  "https://images.pexels.com/photos/2074130/pexels-photo-2074130.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Menu: []string{
				"Artisanal Coffee - £3.50",
				"Avocado Toast - £8.95",
				"Homemade Granola Bowl - £7.50",
				"Eggs Benedict - £9.95",
				"Fresh Pastries - £3.25",
			},
			TimeSlots: []models.TimeSlot{
				{ID: 1, Time: "09:00", Available: true},
				{ID: 2, Time: "10:30", Available: true},
				{ID: 3, Time: "12:00", Available: false},
				{ID: 4, Time: "13:30", Available: true},
				{ID: 5, Time: "15:00", Available: true},
				{ID: 6, Time: "16:30", Available: false},
			},
		},
		{
			ID:          2,
			Name:        "Brew & Bloom",
			Address:     "45 Granby Street, Leicester LE1 6FE",
			Description: "Brew & Bloom combines excellent coffee with beautiful floral arrangements. Enjoy your latte surrounded by lush plants in our greenhouse-inspired space. We source our beans ethically and roast in small batches on site.",
			Rating:      4.5,
			PriceLevel:  3,
			Image:       "https://images.pexels.com/photos/2122294/pexels-photo-2122294.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			CoverImage:  "https://images.pexels.com/photos/1002740/pexels-photo-1002740.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Menu: []string{
				"Specialty Pour Over - £4.50",
				"Botanical Breakfast - £10.95",
				"Vegan Buddha Bowl - £11.50",
				"Rose Latte - £4.75",
				"Lavender Scone - £3.95",
			},
			TimeSlots: []models.TimeSlot{
				{ID: 1, Time: "08:00", Available: true},
				{ID: 2, Time: "09:30", Available: false},
				{ID: 3, Time: "11:00", Available: true},
				{ID: 4, Time: "12:30", Available: true},
				{ID: 5, Time: "14:00", Available: false},
				{ID: 6, Time: "15:30", Available: true},
			},
		},
		{
			ID:          3,
			Name:        "Rustic Bean",
			Address:     "78 Queens Road, Leicester LE2 1TU",
			Description: "A charming rustic café serving hearty breakfasts and lunches made from locally sourced ingredients. Our cozy interior features reclaimed wood and vintage décor, creating the perfect atmosphere for relaxation or casual meetings.",
			Rating:      4.2,
			PriceLevel:  2,
			Image:       "https://images.pexels.com/photos/1813466/pexels-photo-1813466.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			CoverImage:  "https://images.pexels.com/photos/2159065/pexels-photo-2159065.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Menu: []string{
				"Farmhouse Breakfast - £12.50",
				"Sourdough Sandwich - £8.95",
				"Seasonal Soup - £6.50",
				"Rustic Ploughman's - £11.25",
				"Apple Crumble - £5.95",
			},
			TimeSlots: []models.TimeSlot{
				{ID: 1, Time: "09:00", Available: true},
				{ID: 2, Time: "10:30", Available: true},
				{ID: 3, Time: "12:00", Available: true},
				{ID: 4, Time: "13:30", Available: false},
				{ID: 5, Time: "15:00", Available: false},
				{ID: 6, Time: "16:30", Available: true},
			},
		},
		{
			ID:          4,
			Name:        "Urban Grind",
			Address:     "23 Belvoir Street, Leicester LE1 6QH",
			Description: "A modern, minimalist coffee shop specializing in single-origin beans and precision brewing methods. Popular with students and professionals alike, we offer fast Wi-Fi, plenty of power outlets, and a focused atmosphere for work or study.",
			Rating:      4.8,
			PriceLevel:  2,
			Image:       "https://images.pexels.com/photos/683039/pexels-photo-683039.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			CoverImage:  "https://images.pexels.com/photos/1537635/pexels-photo-1537635.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Menu: []string{
				"Aeropress Coffee - £3.75",
				"Cold Brew - £4.25",
				"Avocado & Feta Toast - £7.95",
				"Protein Power Bowl - £9.50",
				"Energy Ball - £2.50",
			},
			TimeSlots: []models.TimeSlot{
				{ID: 1, Time: "07:30", Available: true},
				{ID: 2, Time: "09:00", Available: true},
				{ID: 3, Time: "10:30", Available: false},
				{ID: 4, Time: "12:00", Available: true},
				{ID: 5, Time: "13:30", Available: true},
				{ID: 6, Time: "15:00", Available: true},
			},
		},
		{
			ID:          5,
			Name:        "Sweet Moments",
			Address:     "89 London Road, Leicester LE2 0PF",
			Description: "A delightful patisserie and tea room offering an exquisite selection of handcrafted cakes, pastries, and macarons. Our elegant space is perfect for afternoon tea, celebrations, or treating yourself to something special.",
			Rating:      4.6,
			PriceLevel:  3,
			Image:       "https://images.pexels.com/photos/239975/pexels-photo-239975.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			CoverImage:  "https://images.pexels.com/photos/205961/pexels-photo-205961.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Menu: []string{
				"Afternoon Tea for Two - £32.95",
				"French Macarons (6) - £9.50",
				"Signature Chocolate Cake - £5.75",
				"Champagne & Strawberries - £15.95",
				"Luxury Hot Chocolate - £4.50",
			},
			TimeSlots: []models.TimeSlot{
				{ID: 1, Time: "10:00", Available: true},
				{ID: 2, Time: "11:30", Available: false},
				{ID: 3, Time: "13:00", Available: true},
				{ID: 4, Time: "14:30", Available: true},
				{ID: 5, Time: "16:00", Available: true},
				{ID: 6, Time: "17:30", Available: false},
			},
		},
	}
}

// Users returns the seeded demo accounts. Login matches on email only.
func Users() []models.User {
	return []models.User{
		{
			ID:           1,
			Name:         "Jordan Smith",
			Email:        "jordsmith93@gmail.com",
			Phone:        "07700 900001",
			Address:      "12 Clarendon Park Road, Leicester, LE2 3AJ",
			ProfileImage: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=600",
		},
		{
			ID:      2,
			Name:    "Aaliyah Thompson",
			Email:   "aaliyah_t@outlook.com",
			Phone:   "07700 900002",
			Address: "89 Evington Road, Leicester, LE5 5PB",
		},
		{
			ID:      3,
			Name:    "Marcus Patel",
			Email:   "marcpatel@yahoo.com",
			Phone:   "07700 900003",
			Address: "45 Narborough Road, Leicester, LE3 0LE",
		},
	}
}

// Bookings returns the seeded booking history.
func Bookings() []models.Booking {
	return []models.Booking{
		{
			ID:        1,
			CafeID:    1,
			CafeName:  "The Crumby Café",
			CafeImage: "https://images.pexels.com/photos/1855214/pexels-photo-1855214.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Date:      "2025-05-20",
			Time:      "10:30",
			PartySize: 2,
			Status:    models.BookingConfirmed,
		},
		{
			ID:        2,
			CafeID:    3,
			CafeName:  "Rustic Bean",
			CafeImage: "https://images.pexels.com/photos/840696/pexels-photo-840696.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Date:      "2025-05-25",
			Time:      "12:00",
			PartySize: 4,
			Status:    models.BookingPending,
		},
		{
			ID:        3,
			CafeID:    2,
			CafeName:  "Brew & Bloom",
			CafeImage: "https://images.pexels.com/photos/2122294/pexels-photo-2122294.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Date:      "2025-04-15",
			Time:      "09:30",
			PartySize: 1,
			Status:    models.BookingCompleted,
		},
	}
}
