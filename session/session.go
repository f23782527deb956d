package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/streetbites/streetbites/models"
	"github.com/streetbites/streetbites/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The browser build keeps these in localStorage; the terminal client keeps
// them in a small sqlite file so flows resume across invocations. This is a
// convenience cache, not a durability guarantee.
const (
	KeyCustomerPhone  = "customerPhoneNumber"
	KeyCustomerName   = "customerName"
	KeyAuthToken      = "authToken"
	KeyProfile        = "userProfile"
	KeyPendingOrderID = "activeOrderIdForUpdate"
	KeyPendingOrder   = "orderToUpdate"
)

type Entry struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// Store is the persistent session cache.
type Store struct {
	DB *gorm.DB
}

// Open opens (and bootstraps) the cache at path. Use ":memory:" in tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

func (s *Store) Get(key string) (string, bool) {
	var entry Entry
	if err := s.DB.First(&entry, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Printf("Session lookup failed for %s: %v", key, err)
		}
		return "", false
	}
	return entry.Value, true
}

func (s *Store) Set(key, value string) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.DB.Save(&entry).Error
}

func (s *Store) Delete(key string) error {
	return s.DB.Delete(&Entry{}, "key = ?", key).Error
}

// SaveCustomer caches the customer's details. Empty fields are skipped so a
// phone-only lookup does not erase a previously saved name.
func (s *Store) SaveCustomer(name, phone string) error {
	if name != "" {
		if err := s.Set(KeyCustomerName, name); err != nil {
			return err
		}
	}
	if phone != "" {
		if err := s.Set(KeyCustomerPhone, phone); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Customer() (name, phone string) {
	name, _ = s.Get(KeyCustomerName)
	phone, _ = s.Get(KeyCustomerPhone)
	return name, phone
}

func (s *Store) SaveToken(token string) error {
	return s.Set(KeyAuthToken, token)
}

func (s *Store) Token() (string, bool) {
	return s.Get(KeyAuthToken)
}

func (s *Store) ClearToken() error {
	return s.Delete(KeyAuthToken)
}

// SaveProfile caches the logged-in staff profile, including the branch the
// management screens are scoped to.
func (s *Store) SaveProfile(profile models.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.Set(KeyProfile, string(raw))
}

func (s *Store) Profile() (models.Profile, bool) {
	raw, ok := s.Get(KeyProfile)
	if !ok {
		return models.Profile{}, false
	}
	var profile models.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return models.Profile{}, false
	}
	return profile, true
}

// SavePendingUpdate remembers which order the add-items flow is editing, plus
// a snapshot of it, so the flow survives navigation between commands.
func (s *Store) SavePendingUpdate(orderID string, order models.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return err
	}
	if err := s.Set(KeyPendingOrderID, orderID); err != nil {
		return err
	}
	return s.Set(KeyPendingOrder, string(raw))
}

func (s *Store) PendingUpdate() (string, models.Order, bool) {
	id, ok := s.Get(KeyPendingOrderID)
	if !ok || id == "" {
		return "", models.Order{}, false
	}
	raw, ok := s.Get(KeyPendingOrder)
	if !ok {
		return "", models.Order{}, false
	}
	var order models.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return "", models.Order{}, false
	}
	return id, order, true
}

func (s *Store) ClearPendingUpdate() error {
	if err := s.Delete(KeyPendingOrderID); err != nil {
		return err
	}
	return s.Delete(KeyPendingOrder)
}
