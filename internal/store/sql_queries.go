package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/fundvista/fund-api/models"
)

const (
	findAllCustomers = `SELECT customer_id, name, email, created_at
    FROM customers;`

	findCustomerByID = `SELECT customer_id, name, email, created_at
    FROM customers
    WHERE customer_id = $1;`

	findCustomerByEmail = `SELECT customer_id, name, email, password_hash, created_at
    FROM customers
    WHERE email = $1;`

	getRiskTolerance = `SELECT cp.risk_tolerance
		FROM customer_profile cp
		JOIN customers c ON cp.customer_id = c.customer_id
		WHERE c.customer_id = $1;`

	getCustomerInvestments = `SELECT cf.customer_id, cf.fund_id, cf.investment_percentage, cf.investment_amount, cf.created_at
		FROM customer_fund cf
		JOIN fund f ON f.fund_id = cf.fund_id
		WHERE cf.customer_id = $1;`

	findAllFunds = `SELECT fund_id, name, fund_type, asset_management_company_id, created_at
    FROM fund;`

	findFundByID = `SELECT fund_id, name, fund_type, asset_management_company_id, created_at
    FROM fund
    WHERE fund_id = $1;`

	getAssetComposition = `SELECT ac.asset_name, ac.proportion
		FROM asset_composition ac
		JOIN fund f ON f.fund_id = ac.fund_id
		WHERE ac.fund_id = $1;`

	getManagementCompany = `SELECT amc.name
		FROM asset_management_company amc
		JOIN fund f ON amc.asset_management_company_id = f.asset_management_company_id
		WHERE f.fund_id = $1;`

	getLatestPrice = `SELECT fp.price_id, fp.fund_id, fp.date, fp.fund_price, fp.benchmark_price
		FROM price_data fp
		WHERE fp.fund_id = $1
		ORDER BY fp.date DESC, fp.price_id DESC
		LIMIT 1;`

	getPriceByDate = `SELECT fp.price_id, fp.fund_id, fp.date, fp.fund_price, fp.benchmark_price
		FROM price_data fp
		WHERE fp.fund_id = $1 AND fp.date = $2;`
)

// buildPriceRangeQuery builds the inclusive date-range price query with an
// ascending date ordering.
func buildPriceRangeQuery(fundID int64, start, end models.Date) (string, []any, error) {
	return sq.Select("fp.price_id", "fp.fund_id", "fp.date", "fp.fund_price", "fp.benchmark_price").
		From("price_data fp").
		Where(sq.Eq{"fp.fund_id": fundID}).
		Where(sq.GtOrEq{"fp.date": start}).
		Where(sq.LtOrEq{"fp.date": end}).
		OrderBy("fp.date ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
