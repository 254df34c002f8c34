package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hostel-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hostel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase fills in a default office settings row and a handful of demo
// students on an empty database. The room hierarchy itself is never seeded
// here: it is built exactly once through the structure initializer.
func SeedDatabase() {
	var settingCount int64
	DB.Model(&models.HostelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HostelSetting{
			Name:      "University Hostel Office",
			Email:     "hostels@university.local",
			Amenities: []byte(`["water","electricity","wifi"]`),
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed hostel settings: %v", err)
		} else {
			log.Println("Hostel settings seeded")
		}
	}

	if envOrDefault("SEED_DEMO_STUDENTS", "false") != "true" {
		return
	}

	var studentCount int64
	DB.Model(&models.Student{}).Count(&studentCount)
	if studentCount == 0 {
		students := []models.Student{
			{AdmissionNumber: "ADM-0001", FullName: "Demo Student One", Email: "demo1@university.local", Gender: models.GenderMale},
			{AdmissionNumber: "ADM-0002", FullName: "Demo Student Two", Email: "demo2@university.local", Gender: models.GenderFemale},
		}
		if err := DB.Create(&students).Error; err != nil {
			log.Printf("warning: failed to seed demo students: %v", err)
		} else {
			log.Println("Demo students seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.HostelSetting{},
		&models.Student{},
		&models.Block{},
		&models.Floor{},
		&models.Room{},
		&models.Bed{},
		&models.Booking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
