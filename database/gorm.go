package database

import (
	"encoding/json"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"coursemaster/model"
)

// kvEntry is the single-table key-value layout backing the store. The course
// collection lives as one JSON blob under CoursesKey.
type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

type GORMStore struct {
	db *gorm.DB
}

// StartGORM opens the local SQLite store at the given path.
func StartGORM(path string) (*GORMStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		log.Println("Unable to open local store:", err)
		return nil, err
	}

	log.Println("Successfully opened local course store at", path)
	return &GORMStore{db: db}, nil
}

// Init runs the AutoMigrate to create/update the store table
func (s *GORMStore) Init() error {
	return s.db.AutoMigrate(&kvEntry{})
}

// LoadCourses reads the whole course collection. A missing entry is an empty
// collection; an unparseable blob is logged and degrades to an empty
// collection rather than failing the caller.
func (s *GORMStore) LoadCourses() ([]model.Course, error) {
	var entry kvEntry
	if err := s.db.First(&entry, "key = ?", CoursesKey).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []model.Course{}, nil
		}
		return nil, err
	}

	var courses []model.Course
	if err := json.Unmarshal(entry.Value, &courses); err != nil {
		log.Println("Failed to parse stored courses, starting empty:", err)
		return []model.Course{}, nil
	}
	if courses == nil {
		courses = []model.Course{}
	}

	return courses, nil
}

// SaveCourses overwrites the stored collection with the given one.
func (s *GORMStore) SaveCourses(courses []model.Course) error {
	value, err := json.Marshal(courses)
	if err != nil {
		return err
	}

	entry := kvEntry{Key: CoursesKey, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

// Close closes the store connection
func (s *GORMStore) Close() error {
	log.Println("Closing local course store...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck verifies the store connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
