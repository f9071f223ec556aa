package services

import (
	"context"

	"orchid-shop/models"
	"orchid-shop/repositories"
)

type OrchidService struct {
	orchidRepo   *repositories.OrchidRepository
	categoryRepo *repositories.CategoryRepository
}

func NewOrchidService(orchidRepo *repositories.OrchidRepository, categoryRepo *repositories.CategoryRepository) *OrchidService {
	return &OrchidService{orchidRepo: orchidRepo, categoryRepo: categoryRepo}
}

func (s *OrchidService) GetAllOrchids(ctx context.Context) ([]models.Orchid, error) {
	return s.orchidRepo.FindAll(ctx)
}

func (s *OrchidService) GetOrchidByID(ctx context.Context, id string) (*models.Orchid, error) {
	orchid, err := s.orchidRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrchidNotFound
	}
	return orchid, nil
}

func (s *OrchidService) CountOrchids(ctx context.Context) (int64, error) {
	return s.orchidRepo.Count(ctx)
}

func (s *OrchidService) GetOrchidsByCategory(ctx context.Context, categoryID string) ([]models.Orchid, error) {
	return s.orchidRepo.FindByCategory(ctx, categoryID)
}

func (s *OrchidService) SearchOrchidsByName(ctx context.Context, name string) ([]models.Orchid, error) {
	return s.orchidRepo.SearchByName(ctx, name)
}

func (s *OrchidService) GetOrchidsByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Orchid, error) {
	return s.orchidRepo.FindByPriceRange(ctx, minPrice, maxPrice)
}

func (s *OrchidService) GetOrchidsByNaturalType(ctx context.Context, isNatural bool) ([]models.Orchid, error) {
	return s.orchidRepo.FindByNatural(ctx, isNatural)
}

// CreateOrchid rejects unknown categories up front so the catalog never holds
// a dangling category reference.
func (s *OrchidService) CreateOrchid(ctx context.Context, req models.OrchidRequest) (*models.Orchid, error) {
	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	orchid := &models.Orchid{
		OrchidName:  req.OrchidName,
		Description: req.Description,
		OrchidURL:   req.OrchidURL,
		Price:       req.Price,
		IsNatural:   req.IsNatural,
		CategoryID:  category.ID,
	}
	if err := s.orchidRepo.Insert(ctx, orchid); err != nil {
		return nil, err
	}
	return orchid, nil
}

func (s *OrchidService) UpdateOrchid(ctx context.Context, id string, req models.OrchidRequest) (*models.Orchid, error) {
	orchid, err := s.orchidRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrchidNotFound
	}

	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	orchid.OrchidName = req.OrchidName
	orchid.Description = req.Description
	orchid.Price = req.Price
	orchid.IsNatural = req.IsNatural
	orchid.CategoryID = category.ID
	if req.OrchidURL != "" {
		orchid.OrchidURL = req.OrchidURL
	}

	if err := s.orchidRepo.Update(ctx, orchid); err != nil {
		return nil, err
	}
	return orchid, nil
}

func (s *OrchidService) UpdateOrchidPhoto(ctx context.Context, id string, url string) (*models.Orchid, error) {
	if err := s.orchidRepo.UpdateURL(ctx, id, url); err != nil {
		return nil, ErrOrchidNotFound
	}
	return s.GetOrchidByID(ctx, id)
}

func (s *OrchidService) DeleteOrchid(ctx context.Context, id string) error {
	return s.orchidRepo.Delete(ctx, id)
}
