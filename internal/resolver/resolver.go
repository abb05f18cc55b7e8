// Package resolver assembles the admin dashboard's payment rows. The backend
// has no joined endpoint, so each payment's reservation and the reservation's
// client name are fetched separately and stitched together here.
package resolver

import (
	"context"
	"fmt"
	"sync"

	"herramarket-frontdesk/internal/cache"
	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/logger"
	"herramarket-frontdesk/internal/upstream"
)

const defaultWorkers = 5

// Source is the slice of the backend surface the resolver needs.
type Source interface {
	SearchPayments(ctx context.Context, filter upstream.PaymentFilter) ([]domain.Payment, error)
	GetReservation(ctx context.Context, id int64) (*domain.Reservation, error)
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
}

// Resolver performs the payment -> reservation -> client fan-out join.
// Both caches are injected and shared across invocations; reservations are
// immutable upstream, so a cached entry is trusted until it expires.
type Resolver struct {
	src          Source
	reservations *cache.TTLCache[*domain.Reservation]
	clientNames  *cache.TTLCache[string]
	workers      int
}

// New creates a resolver fetching through src with at most workers concurrent
// lookups. A non-positive workers falls back to the default of 5.
func New(src Source, reservations *cache.TTLCache[*domain.Reservation], clientNames *cache.TTLCache[string], workers int) *Resolver {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Resolver{
		src:          src,
		reservations: reservations,
		clientNames:  clientNames,
		workers:      workers,
	}
}

// PaymentsWithClients fetches payments matching the filter and resolves each
// one's reservation and client display name. The output has exactly one row
// per payment, in the payments' order; lookup failures mark the row instead
// of dropping it. Only the initial payments search can fail the whole call.
//
// Cancelling ctx stops new lookups and aborts in-flight ones; entries already
// cached stay cached.
func (r *Resolver) PaymentsWithClients(ctx context.Context, filter upstream.PaymentFilter) ([]domain.PaymentWithClient, error) {
	payments, err := r.src.SearchPayments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search payments: %w", err)
	}

	reservations := r.resolveReservations(ctx, payments)
	names := r.resolveClientNames(ctx, reservations)

	out := make([]domain.PaymentWithClient, len(payments))
	for i, payment := range payments {
		row := domain.PaymentWithClient{Payment: payment}

		if payment.ReservationID == 0 {
			row.ReservationError = true
			row.ErrorMessage = "missing reservation id"
			out[i] = row
			continue
		}

		res := reservations[payment.ReservationID]
		if res == nil {
			row.ReservationError = true
			row.ErrorMessage = "reservation unavailable"
			out[i] = row
			continue
		}

		row.Reservation = res
		if res.ClientID == 0 {
			row.ReservationError = true
			row.ErrorMessage = "reservation missing client"
			out[i] = row
			continue
		}

		row.ClientID = res.ClientID
		name, ok := names[res.ClientID]
		if !ok || name == "" {
			name = domain.UnknownClientName
		}
		row.ClienteNombre = name
		out[i] = row
	}
	return out, nil
}

// resolveReservations maps every distinct reservation ID referenced by the
// payments to its reservation, or nil when the lookup failed or was cut off
// by cancellation. Cache hits never reach the backend.
func (r *Resolver) resolveReservations(ctx context.Context, payments []domain.Payment) map[int64]*domain.Reservation {
	resolved := make(map[int64]*domain.Reservation)
	var misses []int64
	for _, p := range payments {
		id := p.ReservationID
		if id == 0 {
			continue
		}
		if _, seen := resolved[id]; seen {
			continue
		}
		if res, ok := r.reservations.Get(id); ok {
			resolved[id] = res
			continue
		}
		resolved[id] = nil
		misses = append(misses, id)
	}

	var mu sync.Mutex
	r.fanOut(ctx, misses, func(ctx context.Context, id int64) {
		res, err := r.src.GetReservation(ctx, id)
		if err != nil {
			logger.Warn("Reservation lookup failed", "reservation_id", id, "error", err)
			return
		}
		r.reservations.Put(id, res)
		mu.Lock()
		resolved[id] = res
		mu.Unlock()
	})
	return resolved
}

// resolveClientNames maps every distinct client ID referenced by resolved
// reservations to a display name. Failed lookups are simply absent; the
// caller substitutes the unknown sentinel.
func (r *Resolver) resolveClientNames(ctx context.Context, reservations map[int64]*domain.Reservation) map[int64]string {
	names := make(map[int64]string)
	var misses []int64
	for _, res := range reservations {
		if res == nil || res.ClientID == 0 {
			continue
		}
		if _, seen := names[res.ClientID]; seen {
			continue
		}
		if name, ok := r.clientNames.Get(res.ClientID); ok {
			names[res.ClientID] = name
			continue
		}
		names[res.ClientID] = ""
		misses = append(misses, res.ClientID)
	}

	var mu sync.Mutex
	r.fanOut(ctx, misses, func(ctx context.Context, id int64) {
		client, err := r.src.GetClient(ctx, id)
		if err != nil {
			logger.Warn("Client lookup failed", "client_id", id, "error", err)
			return
		}
		name := client.DisplayName()
		r.clientNames.Put(id, name)
		mu.Lock()
		names[id] = name
		mu.Unlock()
	})
	return names
}

// fanOut runs fetch over the ids with a fixed-size worker pool pulling from a
// shared queue, capping in-flight backend requests at r.workers. Completion
// order is unspecified; callers index results by ID. Cancellation stops
// dispatch and lets the workers drain.
func (r *Resolver) fanOut(ctx context.Context, ids []int64, fetch func(ctx context.Context, id int64)) {
	if len(ids) == 0 {
		return
	}
	workers := r.workers
	if workers > len(ids) {
		workers = len(ids)
	}

	queue := make(chan int64)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for id := range queue {
				if ctx.Err() != nil {
					continue
				}
				fetch(ctx, id)
			}
		}()
	}

dispatch:
	for _, id := range ids {
		select {
		case queue <- id:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(queue)
	wg.Wait()
}
