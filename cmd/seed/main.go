package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hostelhub/internal/database"
	"hostelhub/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hostelhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM closed_dates")
	db.Exec("DELETE FROM monthly_payments")
	db.Exec("DELETE FROM settlements")
	db.Exec("DELETE FROM commissions")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hostels")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@hostelhub.in",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Platform Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@hostelhub.in / admin123")

	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owners := []domain.User{
		{Email: "ravi@sunrisepg.in", PasswordHash: string(ownerHash), Role: domain.RoleHostelOwner, Name: "Ravi Kumar", Phone: "+91-9812345670"},
		{Email: "meera@skylinestays.in", PasswordHash: string(ownerHash), Role: domain.RoleHostelOwner, Name: "Meera Nair", Phone: "+91-9812345671"},
	}
	for i := range owners {
		db.Create(&owners[i])
	}

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
	customers := []domain.User{
		{Email: "arjun@gmail.com", PasswordHash: string(customerHash), Role: domain.RoleCustomer, Name: "Arjun Menon", Phone: "+91-9876500001"},
		{Email: "priya@gmail.com", PasswordHash: string(customerHash), Role: domain.RoleCustomer, Name: "Priya Sharma", Phone: "+91-9876500002"},
		{Email: "rahul@gmail.com", PasswordHash: string(customerHash), Role: domain.RoleCustomer, Name: "Rahul Verma", Phone: "+91-9876500003"},
	}
	for i := range customers {
		db.Create(&customers[i])
	}

	// ================== HOSTELS ==================
	log.Println("Creating hostels...")

	hostels := []domain.Hostel{
		{
			OwnerID:     owners[0].ID,
			Name:        "Sunrise PG for Gents",
			Description: "Quiet PG near the IT park with meals included.",
			Type:        domain.HostelPG,
			Street:      "14 MG Road",
			Area:        "Hinjewadi",
			City:        "Pune",
			State:       "Maharashtra",
			Pincode:     "411057",
			Phone:       "+91-2041234567",
			Amenities:   "wifi,laundry,meals,power-backup",
			Verified:    true,
			Rooms: []domain.Room{
				{Code: "S1", Type: domain.RoomSingle, PricePerMonth: 9500, Capacity: 1, AvailabilityCount: 2},
				{Code: "D1", Type: domain.RoomDouble, PricePerMonth: 7000, Capacity: 2, AvailabilityCount: 4},
				{Code: "DM1", Type: domain.RoomDormitory, PricePerMonth: 4500, Capacity: 6, AvailabilityCount: 10},
			},
		},
		{
			OwnerID:     owners[1].ID,
			Name:        "Skyline Co-Living",
			Description: "Co-living spaces for working professionals.",
			Type:        domain.HostelCoLiving,
			Street:      "8 Residency Road",
			Area:        "Koramangala",
			City:        "Bengaluru",
			State:       "Karnataka",
			Pincode:     "560034",
			Phone:       "+91-8041234567",
			Amenities:   "wifi,gym,housekeeping,cafeteria",
			Verified:    true,
			Rooms: []domain.Room{
				{Code: "A101", Type: domain.RoomSingle, PricePerMonth: 14000, Capacity: 1, AvailabilityCount: 3},
				{Code: "A102", Type: domain.RoomDouble, PricePerMonth: 10500, Capacity: 2, AvailabilityCount: 5},
			},
		},
		{
			OwnerID:     owners[1].ID,
			Name:        "Backpacker's Nest",
			Description: "Budget dorms for travellers, walk from the metro.",
			Type:        domain.HostelTravelers,
			Street:      "22 Brigade Road",
			Area:        "Indiranagar",
			City:        "Bengaluru",
			State:       "Karnataka",
			Pincode:     "560038",
			Phone:       "+91-8041234568",
			Amenities:   "wifi,lockers,common-kitchen",
			Rooms: []domain.Room{
				{Code: "DORM-A", Type: domain.RoomDormitory, PricePerMonth: 6000, Capacity: 8, AvailabilityCount: 16},
				{Code: "TR1", Type: domain.RoomTriple, PricePerMonth: 8000, Capacity: 3, AvailabilityCount: 3},
			},
		},
	}
	for i := range hostels {
		db.Create(&hostels[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	checkIn := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	bookings := []domain.Booking{
		{
			UserID:        customers[0].ID,
			HostelID:      hostels[0].ID,
			RoomCode:      "S1",
			RoomType:      domain.RoomSingle,
			CheckInDate:   checkIn,
			PricePerMonth: 9500,
			PriceTotal:    9500,
			PaymentStatus: domain.PaymentPending,
			BookingType:   domain.BookingMonthly,
			Source:        domain.SourceWeb,
		},
		{
			UserID:        customers[1].ID,
			HostelID:      hostels[1].ID,
			RoomCode:      "A102",
			RoomType:      domain.RoomDouble,
			CheckInDate:   checkIn,
			PricePerMonth: 10500,
			PriceTotal:    10500,
			PaymentStatus: domain.PaymentPending,
			BookingType:   domain.BookingMonthly,
			Source:        domain.SourceMobile,
		},
	}
	for i := range bookings {
		db.Create(&bookings[i])
	}

	log.Printf("Seed complete: %d users, %d hostels, %d bookings",
		1+len(owners)+len(customers), len(hostels), len(bookings))
}
