package main

import (
	"context"
	"errors"
	"flag"

	"github.com/lightbnb/backend/internal/domain/entities"
	domainrepos "github.com/lightbnb/backend/internal/domain/repositories"
)

var errUsage = errors.New("invalid usage")

type repositories struct {
	users        domainrepos.UserRepository
	reservations domainrepos.ReservationRepository
	properties   domainrepos.PropertyRepository
}

// A command registers its flags and returns the action to run once they are parsed.
type command func(fs *flag.FlagSet) func(ctx context.Context, repos repositories) (interface{}, error)

var commands = map[string]command{
	"user":         userCommand,
	"add-user":     addUserCommand,
	"reservations": reservationsCommand,
	"properties":   propertiesCommand,
	"add-property": addPropertyCommand,
}

func userCommand(fs *flag.FlagSet) func(context.Context, repositories) (interface{}, error) {
	var email *string
	var id *int64
	fs.Func("email", "email to look up", setString(&email))
	fs.Func("id", "id to look up", setInt64(&id))

	return func(ctx context.Context, repos repositories) (interface{}, error) {
		switch {
		case email != nil:
			return repos.users.GetByEmail(ctx, *email)
		case id != nil:
			return repos.users.GetByID(ctx, *id)
		default:
			return nil, errUsage
		}
	}
}

func addUserCommand(fs *flag.FlagSet) func(context.Context, repositories) (interface{}, error) {
	user := &entities.User{}
	fs.StringVar(&user.Name, "name", "", "user name")
	fs.StringVar(&user.Email, "email", "", "user email")
	fs.StringVar(&user.Password, "password", "", "password, stored as given")

	return func(ctx context.Context, repos repositories) (interface{}, error) {
		return repos.users.Create(ctx, user)
	}
}

func reservationsCommand(fs *flag.FlagSet) func(context.Context, repositories) (interface{}, error) {
	guest := fs.Int64("guest", 0, "guest user id")
	limit := fs.Int("limit", 0, "maximum reservations to return")

	return func(ctx context.Context, repos repositories) (interface{}, error) {
		if *guest == 0 {
			return nil, errUsage
		}
		return repos.reservations.ListByGuest(ctx, *guest, *limit)
	}
}

func propertiesCommand(fs *flag.FlagSet) func(context.Context, repositories) (interface{}, error) {
	filter := &domainrepos.PropertyFilter{}
	fs.Func("city", "city substring", setString(&filter.City))
	fs.Func("owner", "owner user id", setInt64(&filter.OwnerID))
	fs.Func("min-price", "minimum price per night, whole units", setInt64(&filter.MinimumPricePerNight))
	fs.Func("max-price", "maximum price per night, whole units", setInt64(&filter.MaximumPricePerNight))
	fs.Func("min-rating", "minimum average rating", setFloat64(&filter.MinimumRating))
	fs.IntVar(&filter.Limit, "limit", 0, "maximum properties to return")

	return func(ctx context.Context, repos repositories) (interface{}, error) {
		return repos.properties.List(ctx, *filter)
	}
}

func addPropertyCommand(fs *flag.FlagSet) func(context.Context, repositories) (interface{}, error) {
	p := &entities.Property{}
	fs.Func("owner", "owner user id", setInt64(&p.OwnerID))
	fs.Func("title", "title", setString(&p.Title))
	fs.Func("description", "description", setString(&p.Description))
	fs.Func("thumbnail", "thumbnail photo url", setString(&p.ThumbnailPhotoURL))
	fs.Func("cover", "cover photo url", setString(&p.CoverPhotoURL))
	fs.Func("cost", "cost per night in cents", setInt64(&p.CostPerNight))
	fs.Func("street", "street", setString(&p.Street))
	fs.Func("city", "city", setString(&p.City))
	fs.Func("province", "province", setString(&p.Province))
	fs.Func("post-code", "post code", setString(&p.PostCode))
	fs.Func("country", "country", setString(&p.Country))
	fs.Func("parking", "parking spaces", setInt(&p.ParkingSpaces))
	fs.Func("bathrooms", "number of bathrooms", setInt(&p.NumberOfBathrooms))
	fs.Func("bedrooms", "number of bedrooms", setInt(&p.NumberOfBedrooms))

	return func(ctx context.Context, repos repositories) (interface{}, error) {
		return repos.properties.Create(ctx, p)
	}
}
