package database

import (
	"fmt"
	"log"

	"edupath_backend/internal/config"
	"edupath_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.ContentItem{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed a starter catalog so a fresh install can generate paths.
	var count int64
	db.Model(&model.ContentItem{}).Count(&count)
	if count == 0 {
		seed := []model.ContentItem{
			{
				Title:              "Introduction to Programming",
				Type:               model.MediumVideo,
				Difficulty:         model.DifficultyBeginner,
				Duration:           45,
				Category:           "technology",
				Tags:               model.StringList{"programming", "basics"},
				Prerequisites:      model.StringList{},
				LearningObjectives: model.StringList{"Understand variables and control flow"},
			},
			{
				Title:              "Data Structures in Practice",
				Type:               model.MediumReading,
				Difficulty:         model.DifficultyIntermediate,
				Duration:           60,
				Category:           "technology",
				Tags:               model.StringList{"programming", "data structures"},
				Prerequisites:      model.StringList{"Introduction to Programming"},
				LearningObjectives: model.StringList{"Choose the right structure for a problem"},
			},
			{
				Title:              "Machine Learning Foundations",
				Type:               model.MediumInteractive,
				Difficulty:         model.DifficultyAdvanced,
				Duration:           90,
				Category:           "technology",
				Tags:               model.StringList{"machine learning", "ai"},
				Prerequisites:      model.StringList{"Data Structures in Practice"},
				LearningObjectives: model.StringList{"Train and evaluate a simple model"},
			},
			{
				Title:              "Business Communication Essentials",
				Type:               model.MediumDiscussion,
				Difficulty:         model.DifficultyBeginner,
				Duration:           30,
				Category:           "business",
				Tags:               model.StringList{"business", "communication"},
				Prerequisites:      model.StringList{},
				LearningObjectives: model.StringList{"Write clear professional messages"},
			},
		}
		for i := range seed {
			db.Create(&seed[i])
		}
	}

	return db, nil
}
