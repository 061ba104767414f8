package database

import (
	"context"
	"fmt"
	"math"

	"github.com/doug-martin/goqu/v9"
	"github.com/lightbnb/backend/internal/domain/entities"
	"github.com/lightbnb/backend/internal/domain/repositories"
	"github.com/lightbnb/backend/internal/infrastructure/clients/postgres"
	"github.com/lightbnb/backend/internal/infrastructure/observability"
	apperrors "github.com/lightbnb/backend/pkg/errors"
)

// centsPerUnit converts whole-currency filter prices to stored cents.
const centsPerUnit = 100

var (
	propertiesTable = goqu.T("properties")
	reviewsTable    = goqu.T("property_reviews")
)

// PropertyAdapter implements the PropertyRepository interface
type PropertyAdapter struct {
	adapter
}

// NewPropertyAdapter creates a new property adapter
func NewPropertyAdapter(client *postgres.Client, opts ...Option) repositories.PropertyRepository {
	return &PropertyAdapter{adapter: newAdapter(client, opts)}
}

// List retrieves listings matching the filter, cheapest first
func (a *PropertyAdapter) List(ctx context.Context, filter repositories.PropertyFilter) (_ []*entities.PropertyListing, err error) {
	if err := validatePriceBound("minimum price per night", filter.MinimumPricePerNight); err != nil {
		return nil, err
	}
	if err := validatePriceBound("maximum price per night", filter.MaximumPricePerNight); err != nil {
		return nil, err
	}

	ctx, done := a.begin(ctx, "properties.list", "properties")
	defer done(&err)

	query, args, err := a.listQuery(filter).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build property search query", err)
	}

	observability.LoggerFromContext(ctx).Debug().
		Str("sql", query).
		Int("args", len(args)).
		Msg("property search")

	listings := []*entities.PropertyListing{}
	if err := a.client.DB().SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, err
	}

	return listings, nil
}

// validatePriceBound rejects whole-unit prices whose cent value does not fit in int64.
func validatePriceBound(name string, price *int64) error {
	if price == nil {
		return nil
	}
	if *price > math.MaxInt64/centsPerUnit || *price < math.MinInt64/centsPerUnit {
		return apperrors.NewValidationError(fmt.Sprintf("%s %d is out of range", name, *price))
	}
	return nil
}

func (a *PropertyAdapter) listQuery(filter repositories.PropertyFilter) *goqu.SelectDataset {
	averageRating := goqu.AVG(reviewsTable.Col("rating"))

	ds := a.db.From(propertiesTable).
		Prepared(true).
		Select(propertiesTable.All(), averageRating.As("average_rating")).
		InnerJoin(reviewsTable, goqu.On(propertiesTable.Col("id").Eq(reviewsTable.Col("property_id"))))

	// Row predicates go to WHERE; goqu joins successive calls with AND.
	if filter.City != nil {
		ds = ds.Where(propertiesTable.Col("city").Like("%" + *filter.City + "%"))
	}
	if filter.OwnerID != nil {
		ds = ds.Where(propertiesTable.Col("owner_id").Eq(*filter.OwnerID))
	}
	if filter.MinimumPricePerNight != nil {
		ds = ds.Where(propertiesTable.Col("cost_per_night").Gt(*filter.MinimumPricePerNight * centsPerUnit))
	}
	if filter.MaximumPricePerNight != nil {
		ds = ds.Where(propertiesTable.Col("cost_per_night").Lt(*filter.MaximumPricePerNight * centsPerUnit))
	}

	ds = ds.GroupBy(propertiesTable.Col("id"))

	// The average only exists after grouping.
	if filter.MinimumRating != nil {
		ds = ds.Having(averageRating.Gte(*filter.MinimumRating))
	}

	return ds.
		Order(propertiesTable.Col("cost_per_night").Asc(), propertiesTable.Col("id").Asc()).
		Limit(a.limitOrDefault(filter.Limit))
}

// Create inserts the set fields of property and returns the stored row
func (a *PropertyAdapter) Create(ctx context.Context, property *entities.Property) (_ *entities.Property, err error) {
	cols := propertyColumns(property)
	if cols.len() == 0 {
		return nil, apperrors.NewValidationError("property must set at least one field")
	}

	ctx, done := a.begin(ctx, "properties.create", "properties")
	defer done(&err)

	query, args, err := cols.insert(a.db, "properties").ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build property insert query", err)
	}

	observability.LoggerFromContext(ctx).Debug().
		Str("sql", query).
		Int("args", len(args)).
		Msg("property insert")

	created := &entities.Property{}
	if err := a.client.DB().GetContext(ctx, created, query, args...); err != nil {
		return nil, err
	}

	return created, nil
}

// propertyColumns lists the set fields of p in the canonical column order.
func propertyColumns(p *entities.Property) *columnSet {
	cols := &columnSet{}
	if p == nil {
		return cols
	}

	addIfSet(cols, "owner_id", p.OwnerID)
	addIfSet(cols, "title", p.Title)
	addIfSet(cols, "description", p.Description)
	addIfSet(cols, "thumbnail_photo_url", p.ThumbnailPhotoURL)
	addIfSet(cols, "cover_photo_url", p.CoverPhotoURL)
	addIfSet(cols, "cost_per_night", p.CostPerNight)
	addIfSet(cols, "street", p.Street)
	addIfSet(cols, "city", p.City)
	addIfSet(cols, "province", p.Province)
	addIfSet(cols, "post_code", p.PostCode)
	addIfSet(cols, "country", p.Country)
	addIfSet(cols, "parking_spaces", p.ParkingSpaces)
	addIfSet(cols, "number_of_bathrooms", p.NumberOfBathrooms)
	addIfSet(cols, "number_of_bedrooms", p.NumberOfBedrooms)

	return cols
}
