package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"teampulse-backend/internal/auth"
	"teampulse-backend/internal/config"
	"teampulse-backend/internal/database"
	"teampulse-backend/internal/database/models"
	applogger "teampulse-backend/internal/logger"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ScaleData struct {
	Value       int    `yaml:"value"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url,omitempty"`
}

type TeamData struct {
	TeamName string `yaml:"team_name"`
}

type UserData struct {
	Username  string   `yaml:"username"`
	Email     string   `yaml:"email"`
	Password  string   `yaml:"password"`
	FirstName string   `yaml:"first_name"`
	LastName  string   `yaml:"last_name"`
	IsStaff   bool     `yaml:"is_staff"`
	Teams     []string `yaml:"teams,omitempty"`
}

// File structures
type MoodsFile struct {
	Moods []ScaleData `yaml:"moods"`
}

type WorkloadsFile struct {
	Workloads []ScaleData `yaml:"workloads"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	applogger.Setup(cfg.LogLevel)

	logrus.Infof("Loading initial data from %s", cfg.SeedDataDir)

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, cfg.SeedDataDir); err != nil {
		logrus.Fatalf("Failed to load data from YAML files: %v", err)
	}

	logrus.Info("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var moods MoodsFile
	if err := readYAML(dataDir, "moods.yaml", &moods); err != nil {
		return fmt.Errorf("failed to load moods: %w", err)
	}
	var workloads WorkloadsFile
	if err := readYAML(dataDir, "workloads.yaml", &workloads); err != nil {
		return fmt.Errorf("failed to load workloads: %w", err)
	}
	var teams TeamsFile
	if err := readYAML(dataDir, "teams.yaml", &teams); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	var users UsersFile
	if err := readYAML(dataDir, "users.yaml", &users); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		created := 0
		for _, m := range moods.Moods {
			ok, err := createMood(tx, m)
			if err != nil {
				return fmt.Errorf("failed to create mood %d: %w", m.Value, err)
			}
			if ok {
				created++
			}
		}
		logrus.Infof("Moods: %d created, %d total", created, len(moods.Moods))

		created = 0
		for _, w := range workloads.Workloads {
			ok, err := createWorkload(tx, w)
			if err != nil {
				return fmt.Errorf("failed to create workload %d: %w", w.Value, err)
			}
			if ok {
				created++
			}
		}
		logrus.Infof("Workloads: %d created, %d total", created, len(workloads.Workloads))

		teamMap := make(map[string]*models.Team)
		created = 0
		for _, t := range teams.Teams {
			team, ok, err := createTeam(tx, t)
			if err != nil {
				return fmt.Errorf("failed to create team %s: %w", t.TeamName, err)
			}
			teamMap[t.TeamName] = team
			if ok {
				created++
			}
		}
		logrus.Infof("Teams: %d created, %d total", created, len(teams.Teams))

		created = 0
		for _, u := range users.Users {
			ok, err := createUser(tx, u, teamMap)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", u.Username, err)
			}
			if ok {
				created++
			}
		}
		logrus.Infof("Users: %d created, %d total", created, len(users.Users))
		return nil
	})
}

// readYAML decodes dataDir/name into out. A missing file leaves out empty.
func readYAML(dataDir, name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(dataDir, name))
	if errors.Is(err, os.ErrNotExist) {
		logrus.Warnf("%s not found in %s, skipping", name, dataDir)
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Mood values may repeat, so a mood is matched on value and description together.
func createMood(db *gorm.DB, data ScaleData) (bool, error) {
	var existing models.Mood
	err := db.Where("value = ? AND description = ?", data.Value, data.Description).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	mood := models.Mood{Value: data.Value, Description: data.Description, ImageURL: optional(data.ImageURL)}
	return true, db.Create(&mood).Error
}

func createWorkload(db *gorm.DB, data ScaleData) (bool, error) {
	var existing models.Workload
	err := db.Where("value = ?", data.Value).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	workload := models.Workload{Value: data.Value, Description: data.Description, ImageURL: optional(data.ImageURL)}
	return true, db.Create(&workload).Error
}

func createTeam(db *gorm.DB, data TeamData) (*models.Team, bool, error) {
	var existing models.Team
	err := db.Where("team_name = ?", data.TeamName).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	team := models.Team{TeamName: data.TeamName}
	if err := db.Create(&team).Error; err != nil {
		return nil, false, err
	}
	return &team, true, nil
}

// createUser creates the account when the username is free and adds any missing memberships.
func createUser(db *gorm.DB, data UserData, teamMap map[string]*models.Team) (bool, error) {
	var user models.User
	created := false

	err := db.Where("username = ?", data.Username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if data.Password == "" {
			return false, fmt.Errorf("password is required for new user %s", data.Username)
		}
		hash, err := auth.HashPassword(data.Password)
		if err != nil {
			return false, err
		}
		user = models.User{
			Username:  data.Username,
			Email:     data.Email,
			Password:  hash,
			FirstName: data.FirstName,
			LastName:  data.LastName,
			IsStaff:   data.IsStaff,
			IsActive:  true,
		}
		if err := db.Create(&user).Error; err != nil {
			return false, err
		}
		created = true
	case err != nil:
		return false, err
	}

	for _, name := range data.Teams {
		team, ok := teamMap[name]
		if !ok {
			logrus.Warnf("User %s references unknown team %q, skipping", data.Username, name)
			continue
		}
		var count int64
		if err := db.Model(&models.TeamMember{}).
			Where("team_id = ? AND user_id = ?", team.ID, user.ID).
			Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.TeamMember{TeamID: team.ID, UserID: user.ID}).Error; err != nil {
			return created, err
		}
	}
	return created, nil
}
