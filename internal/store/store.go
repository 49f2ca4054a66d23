// Package store holds every garden collection in memory and is the only place
// those collections are mutated. Operations never fail: lookups that find
// nothing return false, and removals of unknown identifiers are no-ops.
//
// References between records (crop to space, harvest to crop) are plain
// identifiers. Nothing is checked on write and nothing cascades on removal.
package store

import (
	"sync"

	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/seed"
	"github.com/google/uuid"
)

// IDGenerator returns a new identifier candidate. The store retries until the
// candidate is unused in the target collection.
type IDGenerator func() string

// Observer is told about every mutation that changed a collection.
type Observer interface {
	Mutation(entity, op string)
}

const (
	EntitySpace    = "space"
	EntityCrop     = "crop"
	EntityHarvest  = "harvest"
	EntityMember   = "member"
	EntityShopItem = "shop_item"

	OpAdd    = "add"
	OpRemove = "remove"
	OpUpdate = "update"
	OpStatus = "status"
)

type Option func(*Store)

func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observer = o
	}
}

// WithSeed initializes the collections from d. Records are copied.
func WithSeed(d *seed.Data) Option {
	return func(s *Store) {
		if d == nil {
			return
		}
		s.spaces = append([]model.GardenSpace(nil), d.Spaces...)
		s.crops = make([]model.Crop, 0, len(d.Crops))
		for _, c := range d.Crops {
			s.crops = append(s.crops, cloneCrop(c))
		}
		s.harvests = append([]model.Harvest(nil), d.Harvests...)
		s.members = append([]model.GardenUser(nil), d.Members...)
		s.shopItems = make([]model.ShopItem, 0, len(d.ShopItems))
		for _, i := range d.ShopItems {
			s.shopItems = append(s.shopItems, cloneShopItem(i))
		}
	}
}

type Store struct {
	mu       sync.RWMutex
	newID    IDGenerator
	observer Observer

	spaces    []model.GardenSpace
	crops     []model.Crop
	harvests  []model.Harvest
	members   []model.GardenUser
	shopItems []model.ShopItem
}

func New(opts ...Option) *Store {
	s := &Store{
		newID:    func() string { return uuid.New().String() },
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Spaces

func (s *Store) AddSpace(space model.GardenSpace) model.GardenSpace {
	s.mu.Lock()
	defer s.mu.Unlock()

	space.ID = s.uniqueID(space.ID, func(id string) bool { return indexOf(s.spaces, id, spaceID) >= 0 })
	s.spaces = append(s.spaces, space)
	s.observer.Mutation(EntitySpace, OpAdd)
	return space
}

// RemoveSpace leaves crops that reference the space untouched.
func (s *Store) RemoveSpace(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.spaces, removed = without(s.spaces, id, spaceID)
	if removed {
		s.observer.Mutation(EntitySpace, OpRemove)
	}
}

func (s *Store) Spaces() []model.GardenSpace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.GardenSpace(nil), s.spaces...)
}

func (s *Store) Space(id string) (model.GardenSpace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.spaces, id, spaceID); i >= 0 {
		return s.spaces[i], true
	}
	return model.GardenSpace{}, false
}

// Crops

func (s *Store) AddCrop(crop model.Crop) model.Crop {
	s.mu.Lock()
	defer s.mu.Unlock()

	crop = cloneCrop(crop)
	crop.ID = s.uniqueID(crop.ID, func(id string) bool { return indexOf(s.crops, id, cropID) >= 0 })
	s.crops = append(s.crops, crop)
	s.observer.Mutation(EntityCrop, OpAdd)
	return cloneCrop(crop)
}

// RemoveCrop leaves harvests that reference the crop untouched.
func (s *Store) RemoveCrop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.crops, removed = without(s.crops, id, cropID)
	if removed {
		s.observer.Mutation(EntityCrop, OpRemove)
	}
}

// UpdateCrop replaces the crop with the same identifier. Unknown identifiers
// are ignored.
func (s *Store) UpdateCrop(crop model.Crop) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.crops, crop.ID, cropID)
	if i < 0 {
		return
	}
	s.crops[i] = cloneCrop(crop)
	s.observer.Mutation(EntityCrop, OpUpdate)
}

func (s *Store) Crops() []model.Crop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Crop, len(s.crops))
	for i, c := range s.crops {
		out[i] = cloneCrop(c)
	}
	return out
}

func (s *Store) Crop(id string) (model.Crop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.crops, id, cropID); i >= 0 {
		return cloneCrop(s.crops[i]), true
	}
	return model.Crop{}, false
}

// GetCropByQR returns the first crop whose QR key equals code exactly. There
// is no case folding or trimming.
func (s *Store) GetCropByQR(code string) (model.Crop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.crops {
		if c.QRData == code {
			return cloneCrop(c), true
		}
	}
	return model.Crop{}, false
}

// Harvests

func (s *Store) AddHarvest(h model.Harvest) model.Harvest {
	s.mu.Lock()
	defer s.mu.Unlock()

	h.ID = s.uniqueID(h.ID, func(id string) bool { return indexOf(s.harvests, id, harvestID) >= 0 })
	s.harvests = append(s.harvests, h)
	s.observer.Mutation(EntityHarvest, OpAdd)
	return h
}

func (s *Store) Harvests() []model.Harvest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Harvest(nil), s.harvests...)
}

// Members

func (s *Store) AddMember(m model.GardenUser) model.GardenUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.uniqueID(m.ID, func(id string) bool { return indexOf(s.members, id, memberID) >= 0 })
	s.members = append(s.members, m)
	s.observer.Mutation(EntityMember, OpAdd)
	return m
}

func (s *Store) RemoveMember(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.members, removed = without(s.members, id, memberID)
	if removed {
		s.observer.Mutation(EntityMember, OpRemove)
	}
}

func (s *Store) Members() []model.GardenUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.GardenUser(nil), s.members...)
}

// Shop items

func (s *Store) AddShopItem(item model.ShopItem) model.ShopItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item = cloneShopItem(item)
	item.ID = s.uniqueID(item.ID, func(id string) bool { return indexOf(s.shopItems, id, shopItemID) >= 0 })
	s.shopItems = append(s.shopItems, item)
	s.observer.Mutation(EntityShopItem, OpAdd)
	return cloneShopItem(item)
}

func (s *Store) RemoveShopItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.shopItems, removed = without(s.shopItems, id, shopItemID)
	if removed {
		s.observer.Mutation(EntityShopItem, OpRemove)
	}
}

// UpdateShopItem replaces the item with the same identifier. A discount on an
// item that is not on sale is dropped.
func (s *Store) UpdateShopItem(item model.ShopItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.shopItems, item.ID, shopItemID)
	if i < 0 {
		return
	}
	item = cloneShopItem(item)
	if item.Status != model.StatusSale {
		item.SalePercent = nil
	}
	s.shopItems[i] = item
	s.observer.Mutation(EntityShopItem, OpUpdate)
}

// UpdateShopItemStatus moves an item to status. Leaving sale clears the
// discount whatever salePercent holds; entering sale uses salePercent, or
// model.DefaultSalePercent when it is nil or unusable.
func (s *Store) UpdateShopItemStatus(id string, status model.ShopStatus, salePercent *float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.shopItems, id, shopItemID)
	if i < 0 {
		return
	}
	item := &s.shopItems[i]
	item.Status = status
	switch status {
	case model.StatusSale:
		pct := model.DefaultSalePercent
		if salePercent != nil && model.ValidSalePercent(*salePercent) {
			pct = *salePercent
		}
		item.SalePercent = &pct
	default:
		item.SalePercent = nil
	}
	s.observer.Mutation(EntityShopItem, OpStatus)
}

func (s *Store) ShopItems() []model.ShopItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ShopItem, len(s.shopItems))
	for i, item := range s.shopItems {
		out[i] = cloneShopItem(item)
	}
	return out
}

func (s *Store) ShopItem(id string) (model.ShopItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.shopItems, id, shopItemID); i >= 0 {
		return cloneShopItem(s.shopItems[i]), true
	}
	return model.ShopItem{}, false
}

// uniqueID keeps id when it is set and free, otherwise draws from the
// generator until it gets an unused identifier. Callers hold s.mu.
func (s *Store) uniqueID(id string, taken func(string) bool) string {
	for id == "" || taken(id) {
		id = s.newID()
	}
	return id
}

func spaceID(v model.GardenSpace) string { return v.ID }
func cropID(v model.Crop) string { return v.ID }
func harvestID(v model.Harvest) string { return v.ID }
func memberID(v model.GardenUser) string { return v.ID }
func shopItemID(v model.ShopItem) string { return v.ID }

func indexOf[T any](items []T, id string, key func(T) string) int {
	for i, v := range items {
		if key(v) == id {
			return i
		}
	}
	return -1
}

func without[T any](items []T, id string, key func(T) string) ([]T, bool) {
	out := items[:0:0]
	removed := false
	for _, v := range items {
		if key(v) == id {
			removed = true
			continue
		}
		out = append(out, v)
	}
	if !removed {
		return items, false
	}
	return out, true
}

func cloneCrop(c model.Crop) model.Crop {
	if c.ImageURL != nil {
		v := *c.ImageURL
		c.ImageURL = &v
	}
	return c
}

func cloneShopItem(i model.ShopItem) model.ShopItem {
	if i.SalePercent != nil {
		v := *i.SalePercent
		i.SalePercent = &v
	}
	if i.ImageURL != nil {
		v := *i.ImageURL
		i.ImageURL = &v
	}
	return i
}

type nopObserver struct{}

func (nopObserver) Mutation(string, string) {}
