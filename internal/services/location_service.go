package services

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bhoomikart/backend/internal/config"
	"github.com/bhoomikart/backend/internal/constants"
	"github.com/bhoomikart/backend/internal/repositories"
	"github.com/bhoomikart/backend/internal/utils"
)

// LocationService serves the cascading location lookups backing the listing
// form dropdowns. Results are cached in-process; the directory only grows as
// listings are created, so short staleness is acceptable.
type LocationService interface {
	States(ctx context.Context) ([]string, error)
	Districts(ctx context.Context, state string) ([]string, error)
	SubDistricts(ctx context.Context, state, district string) ([]string, error)
	Villages(ctx context.Context, state, district, subDistrict string) ([]string, error)

	// PinCodes narrows by whichever hierarchy levels are supplied;
	// empty arguments are skipped.
	PinCodes(ctx context.Context, state, district, subDistrict, village string) ([]string, error)
}

type locationService struct {
	cfg          *config.Config
	locationRepo repositories.LocationRepository
	cache        *gocache.Cache
}

func NewLocationService(cfg *config.Config, locationRepo repositories.LocationRepository) LocationService {
	return &locationService{
		cfg:          cfg,
		locationRepo: locationRepo,
		cache:        gocache.New(constants.LocationCacheTTL, 10*time.Minute),
	}
}

func (s *locationService) States(ctx context.Context) ([]string, error) {
	return s.cached("states", func() ([]string, error) {
		out, err := s.locationRepo.DistinctStates(ctx)
		if err != nil {
			return nil, err
		}
		return s.withFallback(out, constants.SampleStates, "states"), nil
	})
}

func (s *locationService) Districts(ctx context.Context, state string) ([]string, error) {
	return s.cached(cacheKey("districts", state), func() ([]string, error) {
		out, err := s.locationRepo.DistinctDistricts(ctx, state)
		if err != nil {
			return nil, err
		}
		return s.withFallback(out, constants.SampleDistricts[state], "districts"), nil
	})
}

func (s *locationService) SubDistricts(ctx context.Context, state, district string) ([]string, error) {
	return s.cached(cacheKey("sub_districts", state, district), func() ([]string, error) {
		out, err := s.locationRepo.DistinctSubDistricts(ctx, state, district)
		if err != nil {
			return nil, err
		}
		return s.withFallback(out, constants.SampleSubDistricts[state][district], "sub-districts"), nil
	})
}

func (s *locationService) Villages(ctx context.Context, state, district, subDistrict string) ([]string, error) {
	return s.cached(cacheKey("villages", state, district, subDistrict), func() ([]string, error) {
		out, err := s.locationRepo.DistinctVillages(ctx, state, district, subDistrict)
		if err != nil {
			return nil, err
		}
		return s.withFallback(out, constants.SampleVillages[state][district][subDistrict], "villages"), nil
	})
}

func (s *locationService) PinCodes(ctx context.Context, state, district, subDistrict, village string) ([]string, error) {
	return s.cached(cacheKey("pin_codes", state, district, subDistrict, village), func() ([]string, error) {
		out, err := s.locationRepo.DistinctPinCodes(ctx, state, district, subDistrict, village)
		if err != nil {
			return nil, err
		}
		return s.withFallback(out, constants.SamplePinCodes, "pin codes"), nil
	})
}

func (s *locationService) cached(key string, load func() ([]string, error)) ([]string, error) {
	if hit, ok := s.cache.Get(key); ok {
		return hit.([]string), nil
	}
	out, err := load()
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, out)
	return out, nil
}

// withFallback substitutes sample data for an empty result when the
// sample_location_fallback flag is on. Always an empty slice otherwise, so
// clients get [] rather than null.
func (s *locationService) withFallback(out, sample []string, what string) []string {
	if len(out) > 0 {
		return out
	}
	if s.cfg.LDFlag_SampleLocationFallback && len(sample) > 0 {
		utils.Logger.Warnf("Location directory has no %s; serving sample data", what)
		return sample
	}
	return []string{}
}

func cacheKey(parts ...string) string {
	return strings.Join(parts, "|")
}
