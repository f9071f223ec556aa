package services

import (
	"context"
	"errors"

	"orchid-shop/models"
	"orchid-shop/repositories"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService struct {
	categoryRepo *repositories.CategoryRepository
}

func NewCategoryService(categoryRepo *repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	category := &models.Category{CategoryName: req.CategoryName}
	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req models.CategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	category.CategoryName = req.CategoryName
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}
