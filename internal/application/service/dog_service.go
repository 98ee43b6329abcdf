package service

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/home4paws/home4paws/internal/application/dto"
	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/internal/domain/repository"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

const (
	cacheKeyAllDogs = "dogs:all"
)

// DogService manages dog listings. Read paths for the public catalog are
// served through a short-lived in-process cache; every write invalidates it.
type DogService struct {
	dogs  repository.DogRepository
	cache *gocache.Cache
	log   logger.Logger
}

// NewDogService wires the dog service with a listing cache of the given TTL.
func NewDogService(dogs repository.DogRepository, listingTTL time.Duration, log logger.Logger) *DogService {
	return &DogService{
		dogs:  dogs,
		cache: gocache.New(listingTTL, 2*listingTTL),
		log:   log.WithComponent("dog_service"),
	}
}

// ListAll returns the full catalog, cached.
func (s *DogService) ListAll(ctx context.Context) ([]*models.Dog, error) {
	if cached, ok := s.cache.Get(cacheKeyAllDogs); ok {
		return cached.([]*models.Dog), nil
	}
	dogs, err := s.dogs.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(cacheKeyAllDogs, dogs)
	return dogs, nil
}

// ListByStatus returns listings in the given state, cached per status.
func (s *DogService) ListByStatus(ctx context.Context, status string) ([]*models.Dog, error) {
	parsed, ok := models.ParseDogStatus(status)
	if !ok {
		return nil, errors.ErrValidation(fmt.Sprintf("Invalid dog status: %s", status))
	}
	key := "dogs:status:" + string(parsed)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]*models.Dog), nil
	}
	dogs, err := s.dogs.FindByStatus(ctx, parsed)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, dogs)
	return dogs, nil
}

// ListStray returns stray (adoptable) or non-stray (for sale) listings,
// cached per bucket.
func (s *DogService) ListStray(ctx context.Context, isStray bool) ([]*models.Dog, error) {
	key := fmt.Sprintf("dogs:stray:%t", isStray)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]*models.Dog), nil
	}
	dogs, err := s.dogs.FindByStray(ctx, isStray)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, dogs)
	return dogs, nil
}

// Get loads one listing, cached per ID.
func (s *DogService) Get(ctx context.Context, id uint) (*models.Dog, error) {
	key := fmt.Sprintf("dogs:id:%d", id)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*models.Dog), nil
	}
	dog, err := s.dogs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, dog)
	return dog, nil
}

// Create adds a listing. Admin only.
func (s *DogService) Create(ctx context.Context, req *dto.DogRequest) (*models.Dog, error) {
	status := models.DogStatusAvailable
	if req.Status != "" {
		parsed, ok := models.ParseDogStatus(req.Status)
		if !ok {
			return nil, errors.ErrValidation(fmt.Sprintf("Invalid dog status: %s", req.Status))
		}
		status = parsed
	}

	dog := &models.Dog{
		Name:        req.Name,
		Breed:       req.Breed,
		Description: req.Description,
		Price:       req.Price,
		Status:      status,
		IsStray:     req.IsStray,
		Image:       req.Image,
	}
	if err := s.dogs.Save(ctx, dog); err != nil {
		return nil, err
	}
	s.invalidate()
	s.log.Info(ctx, "dog listing created", logger.Fields{"dog_id": dog.ID, "name": dog.Name})
	return dog, nil
}

// Update replaces a listing's fields. Admin only.
func (s *DogService) Update(ctx context.Context, id uint, req *dto.DogRequest) (*models.Dog, error) {
	dog, err := s.dogs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dog.Name = req.Name
	dog.Breed = req.Breed
	dog.Description = req.Description
	dog.Price = req.Price
	dog.IsStray = req.IsStray
	dog.Image = req.Image
	if req.Status != "" {
		parsed, ok := models.ParseDogStatus(req.Status)
		if !ok {
			return nil, errors.ErrValidation(fmt.Sprintf("Invalid dog status: %s", req.Status))
		}
		dog.Status = parsed
	}

	if err := s.dogs.Update(ctx, dog); err != nil {
		return nil, err
	}
	s.invalidate()
	return dog, nil
}

// UpdateStatus changes only the listing state. Admin only.
func (s *DogService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Dog, error) {
	parsed, ok := models.ParseDogStatus(status)
	if !ok {
		return nil, errors.ErrValidation(fmt.Sprintf("Invalid dog status: %s", status))
	}
	dog, err := s.dogs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dog.Status = parsed
	if err := s.dogs.Update(ctx, dog); err != nil {
		return nil, err
	}
	s.invalidate()
	return dog, nil
}

// Delete removes a listing. Admin only.
func (s *DogService) Delete(ctx context.Context, id uint) error {
	if err := s.dogs.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *DogService) invalidate() {
	s.cache.Flush()
}
