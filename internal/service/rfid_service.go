package service

import (
	"context"

	"go-inventory-rfid/internal/model"
	"go-inventory-rfid/internal/repository"
	"go-inventory-rfid/internal/ws"
	"go-inventory-rfid/pkg/validator"
)

type ScanInput struct {
	UID string `json:"uid" validate:"required,notblank,max=255"`
}

type RfidService interface {
	AddScan(ctx context.Context, in *ScanInput) (*model.RfidScan, error)
	ListScans(ctx context.Context) ([]model.RfidScan, error)
}

type rfidService struct {
	repo   repository.RfidRepository
	events Publisher
}

func NewRfidService(repo repository.RfidRepository, events Publisher) RfidService {
	return &rfidService{repo: repo, events: publisherOrNoop(events)}
}

func (s *rfidService) AddScan(ctx context.Context, in *ScanInput) (*model.RfidScan, error) {
	if err := validator.Validate(in); err != nil {
		return nil, err
	}
	scan := &model.RfidScan{UID: in.UID}
	if err := s.repo.Create(ctx, scan); err != nil {
		return nil, err
	}
	s.events.Publish(ws.EventRfidScanned, scan)
	return scan, nil
}

func (s *rfidService) ListScans(ctx context.Context) ([]model.RfidScan, error) {
	return s.repo.FindAll(ctx)
}
