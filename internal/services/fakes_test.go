package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/bhoomikart/backend/internal/dtos"
	"github.com/bhoomikart/backend/internal/models"
	"github.com/bhoomikart/backend/internal/utils"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*models.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) MarkVerified(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.IsVerified = true
	}
	return nil
}

func (f *fakeUserRepo) UpdateIfVersion(_ context.Context, u *models.User, _ int64) (pgconn.CommandTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *u
	f.users[u.ID] = &cp
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (f *fakeUserRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.User) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return utils.ErrNotFound
	}
	return mutate(u)
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeVerificationRepo struct {
	mu    sync.Mutex
	codes map[string]*models.PhoneVerificationCode // latest per phone
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{codes: map[string]*models.PhoneVerificationCode{}}
}

func (f *fakeVerificationRepo) CreateCode(_ context.Context, userID uuid.UUID, phone, code string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes[phone] = &models.PhoneVerificationCode{
		ID:               uuid.New(),
		UserID:           userID,
		Phone:            phone,
		VerificationCode: code,
		ExpiresAt:        expiresAt,
		CreatedAt:        time.Now(),
	}
	return nil
}

func (f *fakeVerificationRepo) GetCode(_ context.Context, phone string) (*models.PhoneVerificationCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec, ok := f.codes[phone]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeVerificationRepo) DeleteCode(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for phone, rec := range f.codes {
		if rec.ID == id {
			delete(f.codes, phone)
		}
	}
	return nil
}

func (f *fakeVerificationRepo) IncrementAttempts(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.codes {
		if rec.ID == id {
			rec.Attempts++
		}
	}
	return nil
}

func (f *fakeVerificationRepo) CleanupExpired(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for phone, rec := range f.codes {
		if time.Now().After(rec.ExpiresAt) {
			delete(f.codes, phone)
		}
	}
	return nil
}

// expire backdates the live code for phone so expiry paths can be tested.
func (f *fakeVerificationRepo) expire(phone string, age time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec, ok := f.codes[phone]; ok {
		rec.ExpiresAt = time.Now().Add(-age)
	}
}

type fakeNotifier struct {
	mu    sync.Mutex
	sends []string
}

func (f *fakeNotifier) SendOTP(phone string, _ *string, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, phone)
}

type fakeLocationRepo struct {
	mu        sync.Mutex
	locations map[uuid.UUID]*models.IndiaLocation
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: map[uuid.UUID]*models.IndiaLocation{}}
}

func (f *fakeLocationRepo) GetByID(_ context.Context, id uuid.UUID) (*models.IndiaLocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.locations[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeLocationRepo) GetOrCreate(_ context.Context, loc *models.IndiaLocation) (*models.IndiaLocation, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.locations {
		if l.State == loc.State && l.District == loc.District &&
			l.SubDistrict == loc.SubDistrict && l.Village == loc.Village {
			cp := *l
			return &cp, false, nil
		}
	}
	if loc.ID == uuid.Nil {
		loc.ID = uuid.New()
	}
	cp := *loc
	f.locations[loc.ID] = &cp
	return loc, true, nil
}

func (f *fakeLocationRepo) UpdateCentroid(_ context.Context, id uuid.UUID, lat, lon float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.locations[id]; ok {
		l.Latitude, l.Longitude = lat, lon
	}
	return nil
}

func (f *fakeLocationRepo) DistinctStates(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, l := range f.locations {
		if !seen[l.State] {
			seen[l.State] = true
			out = append(out, l.State)
		}
	}
	return out, nil
}

func (f *fakeLocationRepo) DistinctDistricts(_ context.Context, state string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, l := range f.locations {
		if l.State == state && !seen[l.District] {
			seen[l.District] = true
			out = append(out, l.District)
		}
	}
	return out, nil
}

func (f *fakeLocationRepo) DistinctSubDistricts(_ context.Context, state, district string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, l := range f.locations {
		if l.State == state && l.District == district {
			out = append(out, l.SubDistrict)
		}
	}
	return out, nil
}

func (f *fakeLocationRepo) DistinctVillages(_ context.Context, state, district, subDistrict string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, l := range f.locations {
		if l.State == state && l.District == district && l.SubDistrict == subDistrict {
			out = append(out, l.Village)
		}
	}
	return out, nil
}

func (f *fakeLocationRepo) DistinctPinCodes(_ context.Context, state, district, subDistrict, village string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, l := range f.locations {
		if (state == "" || l.State == state) &&
			(district == "" || l.District == district) &&
			(subDistrict == "" || l.SubDistrict == subDistrict) &&
			(village == "" || l.Village == village) {
			out = append(out, l.PinCode)
		}
	}
	return out, nil
}

type fakePropertyRepo struct {
	mu         sync.Mutex
	properties map[uuid.UUID]*models.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: map[uuid.UUID]*models.Property{}}
}

func (f *fakePropertyRepo) Create(_ context.Context, p *models.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	f.properties[p.ID] = &cp
	return nil
}

func (f *fakePropertyRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.properties[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePropertyRepo) List(_ context.Context, fl dtos.PropertyFilter) ([]*models.Property, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Property
	for _, p := range f.properties {
		if fl.SellerID != nil && p.SellerID != *fl.SellerID {
			continue
		}
		if fl.PropertyType != nil && p.PropertyType != *fl.PropertyType {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakePropertyRepo) Update(_ context.Context, p *models.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.properties[p.ID] = &cp
	return nil
}

func (f *fakePropertyRepo) UpdateIfVersion(_ context.Context, p *models.Property, _ int64) (pgconn.CommandTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.properties[p.ID] = &cp
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (f *fakePropertyRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.Property) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.properties[id]
	if !ok {
		return utils.ErrNotFound
	}
	if err := mutate(p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.properties, id)
	return nil
}

type fakeImageRepo struct {
	mu     sync.Mutex
	images []*models.PropertyImage
}

func (f *fakeImageRepo) Create(_ context.Context, img *models.PropertyImage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *img
	f.images = append(f.images, &cp)
	return nil
}

func (f *fakeImageRepo) ListByPropertyID(_ context.Context, propertyID uuid.UUID) ([]*models.PropertyImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.PropertyImage
	for _, img := range f.images {
		if img.PropertyID == propertyID {
			cp := *img
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeImageRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, img := range f.images {
		if img.ID == id {
			f.images = append(f.images[:i], f.images[i+1:]...)
			break
		}
	}
	return nil
}

type fakeShortlistRepo struct {
	mu      sync.Mutex
	entries []*models.Shortlist
}

func (f *fakeShortlistRepo) Add(_ context.Context, buyerID, propertyID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.BuyerID == buyerID && e.PropertyID == propertyID {
			return nil
		}
	}
	f.entries = append(f.entries, &models.Shortlist{
		ID:         uuid.New(),
		BuyerID:    buyerID,
		PropertyID: propertyID,
		CreatedAt:  time.Now(),
	})
	return nil
}

func (f *fakeShortlistRepo) Remove(_ context.Context, buyerID, propertyID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.entries {
		if e.BuyerID == buyerID && e.PropertyID == propertyID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeShortlistRepo) ListByBuyer(_ context.Context, buyerID uuid.UUID, limit, offset int) ([]*models.Shortlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*models.Shortlist
	for _, e := range f.entries {
		if e.BuyerID == buyerID {
			cp := *e
			all = append(all, &cp)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeShortlistRepo) CountByBuyer(_ context.Context, buyerID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.entries {
		if e.BuyerID == buyerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeShortlistRepo) CountByProperty(_ context.Context, propertyID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.entries {
		if e.PropertyID == propertyID {
			n++
		}
	}
	return n, nil
}

type fakeViewRepo struct {
	mu    sync.Mutex
	views []*models.PropertyView
}

func (f *fakeViewRepo) Create(_ context.Context, v *models.PropertyView) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *v
	f.views = append(f.views, &cp)
	return nil
}

func (f *fakeViewRepo) CountByProperty(_ context.Context, propertyID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, v := range f.views {
		if v.PropertyID == propertyID {
			n++
		}
	}
	return n, nil
}
