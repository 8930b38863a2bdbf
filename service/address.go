package service

import (
	"quick_heal/apperror"
	"quick_heal/model"
)

// AddressStore is the persistence surface the address service needs. InTx
// runs fn against a transaction-bound copy of the store so the multi-row
// default-clearing pass commits or rolls back as a unit.
type AddressStore interface {
	ListByUser(userID string) ([]model.Address, error)
	GetByID(addressID string) (model.Address, bool, error)
	Insert(address model.Address) (string, error)
	PatchDefault(addressID string, isDefault bool) error
	Delete(addressID string) (bool, error)
	InTx(fn func(AddressStore) error) error
}

type AddressService struct {
	store AddressStore
}

func NewAddressService(store AddressStore) *AddressService {
	return &AddressService{store: store}
}

// List returns all addresses of the user, newest first.
func (s *AddressService) List(userID string) ([]model.Address, error) {
	return s.store.ListByUser(userID)
}

func (s *AddressService) Get(addressID string) (model.Address, error) {
	address, found, err := s.store.GetByID(addressID)
	if err != nil {
		return model.Address{}, err
	}
	if !found {
		return model.Address{}, apperror.NotFound("address not found")
	}
	return address, nil
}

// Add inserts a new address. When the new address is marked default, every
// other default of the user is cleared first, inside the same transaction,
// so at most one default survives the call.
func (s *AddressService) Add(userID string, req model.AddressRequest) (string, error) {
	if req.Name == "" || req.Phone == "" || req.AddressLine1 == "" || req.City == "" ||
		req.State == "" || req.Pincode == "" {
		return "", apperror.Validation("name, phone and full location fields are required")
	}

	locationType := model.LocationManual
	if req.Latitude != nil && req.Longitude != nil {
		locationType = model.LocationAuto
	}

	address := model.Address{
		UserId:       userID,
		Name:         req.Name,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		IsDefault:    req.IsDefault,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		LocationType: locationType,
	}

	var addressID string
	txErr := s.store.InTx(func(tx AddressStore) error {
		if req.IsDefault {
			existing, err := tx.ListByUser(userID)
			if err != nil {
				return err
			}
			for _, addr := range existing {
				if addr.IsDefault {
					if err := tx.PatchDefault(addr.Id, false); err != nil {
						return err
					}
				}
			}
		}
		id, err := tx.Insert(address)
		if err != nil {
			return err
		}
		addressID = id
		return nil
	})
	if txErr != nil {
		return "", txErr
	}
	return addressID, nil
}

// SetDefault patches every address of the user so only addressID keeps the
// default flag. After the call exactly one address of the user is default.
func (s *AddressService) SetDefault(addressID, userID string) error {
	return s.store.InTx(func(tx AddressStore) error {
		addresses, err := tx.ListByUser(userID)
		if err != nil {
			return err
		}
		found := false
		for _, addr := range addresses {
			if addr.Id == addressID {
				found = true
				break
			}
		}
		if !found {
			return apperror.NotFound("address not found")
		}
		for _, addr := range addresses {
			if err := tx.PatchDefault(addr.Id, addr.Id == addressID); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the address unconditionally. Callers re-select a remaining
// address if the deleted one was chosen for checkout.
func (s *AddressService) Delete(addressID string) error {
	deleted, err := s.store.Delete(addressID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("address not found")
	}
	return nil
}
