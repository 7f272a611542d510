package service

import (
	"fmt"
	"strings"

	"github.com/interest-tracker/internal/models"
	"github.com/interest-tracker/internal/repository"
	"github.com/shopspring/decimal"
)

// csvHeaders is the fixed export column set. The Total (Simple) column is the
// total-amount figure: principal plus simple interest.
var csvHeaders = []string{
	"Name", "Principal", "Rate (% per month)", "Start Date", "End Date",
	"Months", "Simple Interest", "Compound Interest", "Total (Simple)",
	"Total (Compound)", "Calculation Date",
}

// ExportService formats stored investments as CSV. Values are exported as
// stored; nothing is recomputed.
type ExportService struct {
	investments *repository.InvestmentRepository
}

// NewExportService creates a new ExportService
func NewExportService(investments *repository.InvestmentRepository) *ExportService {
	return &ExportService{investments: investments}
}

// ExportCSV renders every investment owned by the user as a CSV string,
// one row per record, newest first.
func (s *ExportService) ExportCSV(userID uint) (string, error) {
	investments, err := s.investments.GetAllByUserID(userID)
	if err != nil {
		return "", err
	}
	return BuildCSV(investments), nil
}

// BuildCSV assembles the CSV document for the given records. Zero elapsed
// periods and zero interest figures render as blank cells; the name and
// calculation timestamp are quoted.
func BuildCSV(investments []models.Investment) string {
	lines := make([]string, 0, len(investments)+1)
	lines = append(lines, strings.Join(csvHeaders, ","))

	for _, inv := range investments {
		endDate := ""
		if inv.EndDate != nil {
			endDate = *inv.EndDate
		}

		months := ""
		if inv.Months > 0 {
			months = fmt.Sprintf("%.2f", inv.Months)
		}

		simple := ""
		if inv.SimpleInterest > 0 {
			simple = money(inv.SimpleInterest)
		}

		compound := ""
		if inv.CompoundInterest > 0 {
			compound = money(inv.CompoundInterest)
		}

		calculationDate := ""
		if inv.CalculationDate != nil {
			calculationDate = fmt.Sprintf("%q", *inv.CalculationDate)
		}

		row := []string{
			fmt.Sprintf("%q", inv.Name),
			money(inv.Principal),
			money(inv.Rate) + "%/month",
			inv.StartDate,
			endDate,
			months,
			simple,
			compound,
			money(inv.TotalSimple),
			money(inv.TotalCompound),
			calculationDate,
		}
		lines = append(lines, strings.Join(row, ","))
	}

	return strings.Join(lines, "\n")
}

// money renders a stored currency or percentage value with two decimals.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
