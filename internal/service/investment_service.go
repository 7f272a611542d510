package service

import (
	"errors"
	"time"

	"github.com/interest-tracker/internal/interest"
	"github.com/interest-tracker/internal/models"
	"github.com/interest-tracker/internal/repository"
	"github.com/interest-tracker/pkg/timeparse"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrincipal   = errors.New("principal must be positive")
	ErrInvalidRate        = errors.New("rate must be between 0 and 1000")
	ErrInvalidTime        = errors.New("time period must be between 0.01 and 1000")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrInvestmentNotFound = errors.New("investment not found")
)

// historyLimit caps the default listing, matching the old UI's history view.
const historyLimit = 50

const dateLayout = "2006-01-02"

// InvestmentService handles investment calculations and owner-scoped CRUD.
// The write paths store caller-supplied figures verbatim; only Calculate
// invokes the interest engine.
type InvestmentService struct {
	investments *repository.InvestmentRepository
}

// NewInvestmentService creates a new InvestmentService
func NewInvestmentService(investments *repository.InvestmentRepository) *InvestmentService {
	return &InvestmentService{investments: investments}
}

// CalculateRequest represents a calculation request
type CalculateRequest struct {
	Principal       float64 `json:"principal" binding:"required"`
	Rate            float64 `json:"rate"`
	Time            float64 `json:"time" binding:"required"`
	Unit            string  `json:"unit"`
	CalculationDate string  `json:"calculation_date"`
}

// CalculateResponse carries the computed figures, rounded to two decimal
// places, plus the normalized calculation timestamp (null when absent or
// unparsable).
type CalculateResponse struct {
	SimpleInterest   float64 `json:"simple_interest"`
	CompoundInterest float64 `json:"compound_interest"`
	TotalSimple      float64 `json:"total_simple"`
	TotalCompound    float64 `json:"total_compound"`
	CalculationDate  *string `json:"calculation_date"`
}

// Calculate validates the raw inputs, runs the interest engine, and returns
// presentation-rounded figures. Nothing is persisted.
func (s *InvestmentService) Calculate(req *CalculateRequest) (*CalculateResponse, error) {
	if err := validateCalculationInputs(req.Principal, req.Rate, req.Time); err != nil {
		return nil, err
	}

	res := interest.Calculate(req.Principal, req.Rate, req.Time, interest.Unit(req.Unit))

	return &CalculateResponse{
		SimpleInterest:   round2(res.SimpleInterest),
		CompoundInterest: round2(res.CompoundInterest),
		TotalSimple:      round2(res.TotalSimple),
		TotalCompound:    round2(res.TotalCompound),
		CalculationDate:  normalizeCalculationDate(req.CalculationDate),
	}, nil
}

// CreateRequest represents an investment insert. Interest figures and totals
// come from the client and are stored as-is; absent totals default to the
// principal.
type CreateRequest struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name" binding:"required"`
	Principal        float64  `json:"principal" binding:"required"`
	Rate             float64  `json:"rate"`
	StartDate        string   `json:"start_date" binding:"required"`
	EndDate          *string  `json:"end_date"`
	Months           float64  `json:"months"`
	SimpleInterest   float64  `json:"simple_interest"`
	CompoundInterest float64  `json:"compound_interest"`
	TotalSimple      *float64 `json:"total_simple"`
	TotalCompound    *float64 `json:"total_compound"`
	CalculationDate  string   `json:"calculation_date"`
}

// Create inserts a new investment for the user
func (s *InvestmentService) Create(userID uint, req *CreateRequest) (*models.Investment, error) {
	if req.Principal < interest.MinPrincipal {
		return nil, ErrInvalidPrincipal
	}
	if req.Rate < interest.MinRate || req.Rate > interest.MaxRate {
		return nil, ErrInvalidRate
	}
	if err := validateDate(req.StartDate); err != nil {
		return nil, err
	}
	if req.EndDate != nil {
		if err := validateDate(*req.EndDate); err != nil {
			return nil, err
		}
	}

	investment := &models.Investment{
		ID:               req.ID,
		UserID:           userID,
		Name:             req.Name,
		Principal:        req.Principal,
		Rate:             req.Rate,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Months:           req.Months,
		SimpleInterest:   req.SimpleInterest,
		CompoundInterest: req.CompoundInterest,
		TotalSimple:      req.Principal,
		TotalCompound:    req.Principal,
		CalculationDate:  normalizeCalculationDate(req.CalculationDate),
	}
	if req.TotalSimple != nil {
		investment.TotalSimple = *req.TotalSimple
	}
	if req.TotalCompound != nil {
		investment.TotalCompound = *req.TotalCompound
	}

	if err := s.investments.Create(investment); err != nil {
		return nil, err
	}

	return investment, nil
}

// UpdateRequest represents an investment recalculation update
type UpdateRequest struct {
	EndDate          *string `json:"end_date"`
	Months           float64 `json:"months"`
	SimpleInterest   float64 `json:"simple_interest"`
	CompoundInterest float64 `json:"compound_interest"`
	TotalSimple      float64 `json:"total_simple"`
	TotalCompound    float64 `json:"total_compound"`
	CalculationDate  string  `json:"calculation_date"`
}

// Update applies a recalculation to an existing investment owned by the user
func (s *InvestmentService) Update(userID uint, id int64, req *UpdateRequest) (*models.Investment, error) {
	if req.EndDate != nil {
		if err := validateDate(*req.EndDate); err != nil {
			return nil, err
		}
	}

	investment, err := s.investments.GetByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrInvestmentNotFound) {
			return nil, ErrInvestmentNotFound
		}
		return nil, err
	}

	investment.EndDate = req.EndDate
	investment.Months = req.Months
	investment.SimpleInterest = req.SimpleInterest
	investment.CompoundInterest = req.CompoundInterest
	investment.TotalSimple = req.TotalSimple
	investment.TotalCompound = req.TotalCompound
	investment.CalculationDate = normalizeCalculationDate(req.CalculationDate)

	if err := s.investments.Update(investment); err != nil {
		return nil, err
	}

	return investment, nil
}

// List returns the user's most recent investments
func (s *InvestmentService) List(userID uint) ([]models.Investment, error) {
	return s.investments.GetByUserID(userID, historyLimit)
}

// Delete removes one investment owned by the user
func (s *InvestmentService) Delete(userID uint, id int64) error {
	err := s.investments.DeleteByIDAndUserID(id, userID)
	if errors.Is(err, repository.ErrInvestmentNotFound) {
		return ErrInvestmentNotFound
	}
	return err
}

// Clear removes every investment owned by the user
func (s *InvestmentService) Clear(userID uint) error {
	return s.investments.DeleteAllByUserID(userID)
}

func validateCalculationInputs(principal, rate, timeValue float64) error {
	if principal < interest.MinPrincipal {
		return ErrInvalidPrincipal
	}
	if rate < interest.MinRate || rate > interest.MaxRate {
		return ErrInvalidRate
	}
	if timeValue < interest.MinTime || timeValue > interest.MaxTime {
		return ErrInvalidTime
	}
	return nil
}

func validateDate(value string) error {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// normalizeCalculationDate reduces a client timestamp to the canonical form,
// or nil when absent or unparsable; the nil persists as NULL.
func normalizeCalculationDate(raw string) *string {
	canonical, ok := timeparse.Normalize(raw)
	if !ok {
		return nil
	}
	return &canonical
}

func round2(v float64) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return rounded
}
