package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mccmmj/cafe-inventory/internal/dto"
	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/repository"
)

var ErrVendorNotFound = errors.New("vendor not found")

type VendorService interface {
	List(ctx context.Context) ([]dto.VendorResponse, error)
	Get(ctx context.Context, name string) (*dto.VendorDetailResponse, error)
	Create(ctx context.Context, req dto.VendorRequest) (*dto.VendorResponse, error)
	Update(ctx context.Context, name string, req dto.VendorRequest) (*dto.VendorResponse, error)
	Delete(ctx context.Context, name string) error
}

type vendorService struct {
	repo      repository.VendorRepository
	inventory repository.InventoryRepository
}

func NewVendorService(repo repository.VendorRepository, inventory repository.InventoryRepository) VendorService {
	return &vendorService{repo: repo, inventory: inventory}
}

func (s *vendorService) List(ctx context.Context) ([]dto.VendorResponse, error) {
	vendors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, dto.VendorFromModel(v))
	}
	return out, nil
}

// Get returns the vendor plus every inventory item referencing it by name.
// The reference is a bare string — a renamed or deleted vendor just stops
// matching, it never errors.
func (s *vendorService) Get(ctx context.Context, name string) (*dto.VendorDetailResponse, error) {
	vendor, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	var referenced []model.InventoryItem
	for _, it := range items {
		if it.PrimaryVendor == name || contains(it.Vendors, name) {
			referenced = append(referenced, it)
		}
	}

	return &dto.VendorDetailResponse{
		VendorResponse: dto.VendorFromModel(*vendor),
		Items:          dto.ItemsFromModel(referenced),
	}, nil
}

func (s *vendorService) Create(ctx context.Context, req dto.VendorRequest) (*dto.VendorResponse, error) {
	if existing, err := s.repo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, fmt.Errorf("vendor %q already exists", req.Name)
	}
	v := vendorFromRequest(req)
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := dto.VendorFromModel(v)
	return &resp, nil
}

func (s *vendorService) Update(ctx context.Context, name string, req dto.VendorRequest) (*dto.VendorResponse, error) {
	if _, err := s.repo.FindByName(ctx, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	v := vendorFromRequest(req)
	if err := s.repo.Update(ctx, name, v); err != nil {
		return nil, err
	}
	resp := dto.VendorFromModel(v)
	return &resp, nil
}

func (s *vendorService) Delete(ctx context.Context, name string) error {
	if _, err := s.repo.FindByName(ctx, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrVendorNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, name)
}

func vendorFromRequest(req dto.VendorRequest) model.Vendor {
	return model.Vendor{
		Name:        req.Name,
		MOQ:         req.MOQ,
		ContactName: req.ContactName,
		ContactInfo: req.ContactInfo,
		Notes:       req.Notes,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
