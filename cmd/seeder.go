package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			fmt.Println("Clearing existing data...")
			for _, table := range []string{"documents", "tasks", "announcements", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)

		adminID := seedUser(db, "priya@tusharpolymers.com", "Priya Sharma", string(hash), "admin")
		employeeID := seedUser(db, "arjun@tusharpolymers.com", "Arjun Mehta", string(hash), "employee")
		_ = adminID

		onboardingTasks := []struct {
			Title string
			Desc  string
		}{
			{"Submit PAN card", "Upload a scanned copy of your PAN card under Documents"},
			{"Submit Aadhar card", "Upload a scanned copy of your Aadhar card under Documents"},
			{"Sign offer letter", "Download, sign and re-upload your offer letter"},
			{"Read the employee handbook", "Ask the assistant for the handbook link"},
			{"Set up IT accounts", "Contact support@tusharpolymers.com for credentials"},
		}

		for _, t := range onboardingTasks {
			var exists int
			row := db.Raw("SELECT 1 FROM tasks WHERE user_id = ? AND title = ?", employeeID, t.Title).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO tasks (title, description, is_completed, user_id, created_at, updated_at) VALUES (?, ?, false, ?, now(), now())",
				t.Title, t.Desc, employeeID,
			).Error; err != nil {
				log.Fatalf("failed to insert task %q: %v", t.Title, err)
			}
		}
		fmt.Println("Seeded onboarding tasks for:", employeeID)

		announcements := []struct {
			Title   string
			Content string
		}{
			{"Welcome to Tushar Polymers", "We are glad to have you on board. Complete your onboarding tasks this week."},
			{"Office holiday", "The plant is closed next Friday for maintenance."},
		}

		for _, a := range announcements {
			var exists int
			row := db.Raw("SELECT 1 FROM announcements WHERE title = ?", a.Title).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO announcements (title, content, published_at, created_at) VALUES (?, ?, now(), now())",
				a.Title, a.Content,
			).Error; err != nil {
				log.Fatalf("failed to insert announcement %q: %v", a.Title, err)
			}
		}
		fmt.Println("Seeded announcements")
	},
}

func seedUser(db *gorm.DB, email, name, passwordHash, role string) int64 {
	var id int64
	row := db.Raw("SELECT id FROM users WHERE email = ?", email).Row()
	if err := row.Scan(&id); err == nil {
		fmt.Println("user already exists:", email)
		return id
	}

	if err := db.Exec(
		"INSERT INTO users (email, name, password_hash, role, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now())",
		email, name, passwordHash, role,
	).Error; err != nil {
		log.Fatalf("failed to insert user %s: %v", email, err)
	}

	if err := db.Raw("SELECT id FROM users WHERE email = ?", email).Row().Scan(&id); err != nil {
		log.Fatalf("failed to lookup user id for %s: %v", email, err)
	}
	fmt.Println("Seeded user:", email)
	return id
}
