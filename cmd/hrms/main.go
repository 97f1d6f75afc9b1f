// cmd/hrms/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/opshive/hrms/internal/audit"
	"github.com/opshive/hrms/internal/auth"
	"github.com/opshive/hrms/internal/config"
	"github.com/opshive/hrms/internal/model"
	"github.com/opshive/hrms/internal/repository"
	"github.com/opshive/hrms/internal/service"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to DB_* env vars)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

var rootCmd = &cobra.Command{
	Use:   "hrms",
	Short: "hrms is the operational CLI for the HRMS API",
	Long:  `hrms manages the HRMS database schema and local development fixtures.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()

		if err := model.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo organisation for local development",
	Long:  `Create the "Acme" organisation with an admin, two employees and a team, assigning one employee.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()
		ctx := context.Background()

		if err := model.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		orgRepo := repository.NewOrganisationRepository(db)
		userRepo := repository.NewUserRepository(db)
		employeeRepo := repository.NewEmployeeRepository(db)
		teamRepo := repository.NewTeamRepository(db)
		assignmentRepo := repository.NewAssignmentRepository(db)
		recorder := audit.NewLogRecorder(repository.NewLogRepository(db))

		hasher := auth.NewPasswordHasher()
		tokens := auth.NewTokenManager("seed-only", time.Hour)

		authService := service.NewAuthService(orgRepo, userRepo, hasher, tokens, recorder)
		employeeService := service.NewEmployeeService(employeeRepo, recorder)
		teamService := service.NewTeamService(teamRepo, recorder)
		assignmentService := service.NewAssignmentService(teamRepo, employeeRepo, assignmentRepo, recorder)

		registered, err := authService.Register(ctx, service.RegisterInput{
			OrgName:   "Acme",
			AdminName: "Alice",
			Email:     "alice@acme.test",
			Password:  "secret1",
		})
		if err != nil {
			log.Fatalf("Failed to register demo organisation: %v", err)
		}

		orgID := registered.User.OrganisationID
		userID := registered.User.ID

		bob, err := employeeService.Create(ctx, orgID, userID, service.CreateEmployeeInput{
			FirstName: "Bob",
			LastName:  "Builder",
			Email:     "bob@acme.test",
		})
		if err != nil {
			log.Fatalf("Failed to create employee: %v", err)
		}

		phone := "+1 555 0100"
		if _, err := employeeService.Create(ctx, orgID, userID, service.CreateEmployeeInput{
			FirstName: "Carol",
			LastName:  "Chen",
			Email:     "carol@acme.test",
			Phone:     &phone,
		}); err != nil {
			log.Fatalf("Failed to create employee: %v", err)
		}

		desc := "Product engineering"
		eng, err := teamService.Create(ctx, orgID, userID, service.CreateTeamInput{
			Name:        "Eng",
			Description: &desc,
		})
		if err != nil {
			log.Fatalf("Failed to create team: %v", err)
		}

		if _, err := assignmentService.Assign(ctx, orgID, userID, eng.ID, bob.ID); err != nil {
			log.Fatalf("Failed to assign employee: %v", err)
		}

		fmt.Printf("Seeded organisation %q (admin alice@acme.test / secret1)\n", "Acme")

		if verbose {
			fmt.Printf("  organisation: %s\n", orgID)
			fmt.Printf("  admin user:   %s\n", userID)
			fmt.Printf("  team Eng:     %s\n", eng.ID)
		}
	},
}

func openDatabase() *gorm.DB {
	dsn := dbConnString
	if dsn == "" {
		_ = godotenv.Load()
		cfg := config.Load()
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.SSLMode,
			cfg.Database.SearchPath,
		)
	}

	logLevel := logger.Silent
	if verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
