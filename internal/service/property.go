package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lightbnb/api/internal/dto"
	"github.com/lightbnb/api/internal/entity"
	"github.com/lightbnb/api/internal/repository"
)

// PropertyService searches and registers rental properties.
type PropertyService struct {
	reader   repository.PropertiesRepository
	writer   repository.PropertyWriter
	validate *validator.Validate
}

// NewPropertyService wires the search reader and the registration writer.
// They may be different stores; see repository.FilePropertyStore.
func NewPropertyService(reader repository.PropertiesRepository, writer repository.PropertyWriter) *PropertyService {
	return &PropertyService{reader: reader, writer: writer, validate: newValidator()}
}

// Search returns up to limit properties matching every present criterion,
// ordered by nightly cost. A zero limit means dto.DefaultSearchLimit.
func (s *PropertyService) Search(ctx context.Context, criteria dto.PropertySearch, limit int) ([]entity.PropertyListing, error) {
	limit, err := normalizeLimit(limit, dto.DefaultSearchLimit)
	if err != nil {
		return nil, err
	}

	if criteria.City != nil {
		city := strings.TrimSpace(*criteria.City)
		if city == "" {
			criteria.City = nil
		} else {
			criteria.City = &city
		}
	}

	if err := validateStruct(s.validate, criteria); err != nil {
		return nil, err
	}
	if criteria.MinimumPricePerNight != nil && criteria.MaximumPricePerNight != nil &&
		*criteria.MinimumPricePerNight > *criteria.MaximumPricePerNight {
		return nil, ValidationError{
			Message: "minimum_price_per_night must not exceed maximum_price_per_night",
			Fields:  map[string]string{"minimum_price_per_night": "ltefield=maximum_price_per_night"},
		}
	}

	return s.reader.Search(ctx, criteria, limit)
}

// AddProperty stores a new active property and returns it with its identifier.
func (s *PropertyService) AddProperty(ctx context.Context, req dto.AddPropertyRequest) (*entity.Property, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.City = strings.TrimSpace(req.City)

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	return s.writer.Create(ctx, &entity.Property{
		OwnerID:           req.OwnerID,
		Title:             req.Title,
		Description:       req.Description,
		ThumbnailPhotoURL: req.ThumbnailPhotoURL,
		CoverPhotoURL:     req.CoverPhotoURL,
		CostPerNight:      req.CostPerNight,
		ParkingSpaces:     req.ParkingSpaces,
		NumberOfBathrooms: req.NumberOfBathrooms,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		Country:           req.Country,
		Street:            req.Street,
		City:              req.City,
		Province:          req.Province,
		PostCode:          req.PostCode,
		Active:            true,
	})
}
