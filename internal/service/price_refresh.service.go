package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"portfolioledger/internal/domain"
	"portfolioledger/internal/logger"
	"portfolioledger/internal/repository"
)

type PriceRefreshService interface {
	RefreshPrices(ctx context.Context) (*RefreshPricesResult, error)
}

type RefreshPricesResult struct {
	AssetsRequested  int
	AssetsPriced     int
	HoldingsUpdated  int
	UnpricedSymbols  []string
	FailedHoldingIDs []int64
}

type priceRefreshServiceHandler struct {
	UserHoldingRepository repository.UserHoldingRepository
	HoldingService        HoldingService
	// Feeds are consulted in order; later feeds only see assets that
	// earlier ones could not price.
	Feeds       []repository.LatestPriceRepository
	Concurrency int
}

func NewPriceRefreshService(
	userHoldingRepository repository.UserHoldingRepository,
	holdingService HoldingService,
	feeds ...repository.LatestPriceRepository,
) PriceRefreshService {
	return priceRefreshServiceHandler{
		UserHoldingRepository: userHoldingRepository,
		HoldingService:        holdingService,
		Feeds:                 feeds,
		Concurrency:           5,
	}
}

type pricedAsset struct {
	asset domain.HeldAsset
	price domain.AssetPrice
}

func (h priceRefreshServiceHandler) fetchPrices(ctx context.Context, assets []domain.HeldAsset) ([]pricedAsset, []string) {
	log := logger.FromContext(ctx)

	remaining := assets
	out := []pricedAsset{}
	for _, feed := range h.Feeds {
		if len(remaining) == 0 {
			break
		}
		supported := []domain.HeldAsset{}
		for _, a := range remaining {
			if feed.Supports(a.Market) {
				supported = append(supported, a)
			}
		}
		if len(supported) == 0 {
			continue
		}

		prices, err := feed.GetLatestPrices(ctx, supported)
		if err != nil {
			log.Warnf("%s price feed failed: %v", feed.Name(), err)
			continue
		}

		next := []domain.HeldAsset{}
		for _, a := range remaining {
			p, ok := prices[a]
			if ok && feed.Supports(a.Market) && p.Price.IsPositive() {
				out = append(out, pricedAsset{asset: a, price: p})
			} else {
				next = append(next, a)
			}
		}
		log.Infof("%s priced %d of %d assets", feed.Name(), len(remaining)-len(next), len(supported))
		remaining = next
	}

	unpriced := []string{}
	for _, a := range remaining {
		unpriced = append(unpriced, fmt.Sprintf("%s:%s", a.Market, a.Symbol))
	}
	sort.Strings(unpriced)
	return out, unpriced
}

// RefreshPrices fetches the latest price of every actively held asset and
// applies it to each holding of that asset.
func (h priceRefreshServiceHandler) RefreshPrices(ctx context.Context) (*RefreshPricesResult, error) {
	log := logger.FromContext(ctx)

	assets, err := h.UserHoldingRepository.ListHeldAssets(nil)
	if err != nil {
		return nil, err
	}

	priced, unpriced := h.fetchPrices(ctx, assets)
	result := &RefreshPricesResult{
		AssetsRequested:  len(assets),
		AssetsPriced:     len(priced),
		UnpricedSymbols:  unpriced,
		FailedHoldingIDs: []int64{},
	}

	numWorkers := h.Concurrency
	if numWorkers <= 0 {
		numWorkers = 1
	}

	inputCh := make(chan pricedAsset, len(priced))
	for _, p := range priced {
		inputCh <- p
	}
	close(inputCh)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range inputCh {
				if ctx.Err() != nil {
					return
				}
				updated, failed, err := h.applyPrice(ctx, p)
				mu.Lock()
				result.HoldingsUpdated += updated
				result.FailedHoldingIDs = append(result.FailedHoldingIDs, failed...)
				if err != nil && firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(result.FailedHoldingIDs, func(i, j int) bool {
		return result.FailedHoldingIDs[i] < result.FailedHoldingIDs[j]
	})
	log.Infof("refreshed prices: %d/%d assets priced, %d holdings updated", result.AssetsPriced, result.AssetsRequested, result.HoldingsUpdated)
	return result, nil
}

func (h priceRefreshServiceHandler) applyPrice(ctx context.Context, p pricedAsset) (int, []int64, error) {
	log := logger.FromContext(ctx)

	holdings, err := h.UserHoldingRepository.List(nil, repository.HoldingListFilter{
		Symbol:     &p.asset.Symbol,
		Market:     &p.asset.Market,
		ActiveOnly: true,
	})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to list %s holdings: %w", p.asset.Symbol, err)
	}

	updated := 0
	failed := []int64{}
	for _, holding := range holdings {
		out, err := h.HoldingService.UpdateCurrentPrice(ctx, repository.HoldingKey{
			UserID: holding.UserID,
			Symbol: holding.Symbol,
			Market: holding.Market,
		}, p.price.Price)
		if err != nil {
			log.Errorf("failed to update price of holding %d: %v", holding.UserHoldingID, err)
			failed = append(failed, holding.UserHoldingID)
			continue
		}
		if out != nil {
			updated++
		}
	}
	return updated, failed, nil
}
