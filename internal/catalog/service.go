package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	pkgerrors "github.com/foodapp-labs/foodapp-core/pkg/errors"
	"github.com/foodapp-labs/foodapp-core/pkg/logger"
	"go.uber.org/multierr"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Filters narrows a restaurant listing. Zero values match everything.
type Filters struct {
	Cuisine string
	Query   string
}

// Service exposes the browse surfaces: restaurant listing, detail lookup,
// cuisine chips, and featured promotions.
type Service interface {
	ListRestaurants(ctx context.Context, filters Filters) ([]Restaurant, error)
	GetRestaurant(ctx context.Context, slug string) (*Restaurant, error)
	Cuisines() []string
	Promotions() []Promotion
}

type service struct {
	restaurants []Restaurant
	cuisines    []string
	promotions  []Promotion
	logg        *logger.Logger
}

// NewService builds a catalog over the given seed data. The seed is checked
// for integrity up front; a malformed dataset is a construction error, not
// something to discover per request.
func NewService(restaurants []Restaurant, cuisines []string, promotions []Promotion, logg *logger.Logger) (Service, error) {
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger required")
	}
	if err := validateSeed(restaurants); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "catalog seed")
	}
	return &service{
		restaurants: restaurants,
		cuisines:    cuisines,
		promotions:  promotions,
		logg:        logg,
	}, nil
}

// ListRestaurants returns restaurants matching the filters, in seed order.
// Cuisine matches tag membership; query matches the name, both
// case-insensitive.
func (s *service) ListRestaurants(ctx context.Context, filters Filters) ([]Restaurant, error) {
	cuisine := strings.ToLower(strings.TrimSpace(filters.Cuisine))
	query := strings.ToLower(strings.TrimSpace(filters.Query))

	matches := make([]Restaurant, 0, len(s.restaurants))
	for _, restaurant := range s.restaurants {
		if cuisine != "" && !hasCuisine(restaurant, cuisine) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(restaurant.Name), query) {
			continue
		}
		matches = append(matches, restaurant)
	}

	s.logg.Info(ctx, fmt.Sprintf("listed %d restaurants", len(matches)))
	return matches, nil
}

// GetRestaurant returns the full detail for one restaurant.
func (s *service) GetRestaurant(ctx context.Context, slug string) (*Restaurant, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for i := range s.restaurants {
		if s.restaurants[i].Slug == slug {
			restaurant := s.restaurants[i]
			return &restaurant, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("restaurant %q not found", slug))
}

func (s *service) Cuisines() []string {
	return append([]string(nil), s.cuisines...)
}

func (s *service) Promotions() []Promotion {
	return append([]Promotion(nil), s.promotions...)
}

func hasCuisine(restaurant Restaurant, cuisine string) bool {
	for _, tag := range restaurant.CuisineTypes {
		if strings.ToLower(tag) == cuisine {
			return true
		}
	}
	return false
}

// validateSeed aggregates every dataset violation rather than stopping at
// the first, so a bad seed reports all its problems at once.
func validateSeed(restaurants []Restaurant) error {
	var err error
	seenSlugs := make(map[string]struct{}, len(restaurants))
	seenItems := make(map[string]string)

	for _, restaurant := range restaurants {
		if !slugPattern.MatchString(restaurant.Slug) {
			err = multierr.Append(err, fmt.Errorf("restaurant %s: malformed slug %q", restaurant.ID, restaurant.Slug))
		}
		if _, dup := seenSlugs[restaurant.Slug]; dup {
			err = multierr.Append(err, fmt.Errorf("duplicate slug %q", restaurant.Slug))
		}
		seenSlugs[restaurant.Slug] = struct{}{}

		if restaurant.Rating < 0 || restaurant.Rating > 5 {
			err = multierr.Append(err, fmt.Errorf("restaurant %s: rating %.1f out of range", restaurant.Slug, restaurant.Rating))
		}

		for _, section := range restaurant.Sections {
			for _, item := range section.Items {
				if item.Price.IsNegative() {
					err = multierr.Append(err, fmt.Errorf("item %s: negative price %s", item.ID, item.Price))
				}
				if owner, dup := seenItems[item.ID]; dup {
					err = multierr.Append(err, fmt.Errorf("item id %s reused across %s and %s", item.ID, owner, restaurant.Slug))
				} else {
					seenItems[item.ID] = restaurant.Slug
				}
			}
		}
	}
	return err
}
