package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"loadboard/internal/apperr"
	"loadboard/internal/domain"
	"loadboard/internal/ports/assigntx"
)

// LoadRepo represents the load/assignment repository.
type LoadRepo struct {
	db *pgxpool.Pool
}

// NewLoadRepo creates a new LoadRepo.
func NewLoadRepo(db *pgxpool.Pool) *LoadRepo {
	return &LoadRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *LoadRepo) WithTx(ctx context.Context, fn func(tx assigntx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// roll back on panic before re-raising
	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return translateDuplicate(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return translateDuplicate(fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

// translateDuplicate maps a unique-constraint violation to the same
// conflict the application-level pre-check reports. The partial unique
// index on assigned_truck_id is the last-resort backstop for commits
// racing past that check; callers must see a 409, not a 500.
func translateDuplicate(err error) error {
	if IsDuplicate(err) {
		return fmt.Errorf("%w: %s", apperr.ErrConflict, err.Error())
	}
	return err
}

const loadColumns = `
	id, shipper_id, shipper_org_id, status, assigned_truck_id,
	pickup_city, delivery_city, truck_type, weight_kg, price_minor,
	pod_verified, settlement_status, delivered_at, settled_at,
	created_at, updated_at`

func scanLoad(row pgx.Row) (*domain.Load, error) {
	var l domain.Load
	err := row.Scan(
		&l.ID, &l.ShipperID, &l.ShipperOrgID, &l.Status, &l.AssignedTruckID,
		&l.PickupCity, &l.DeliveryCity, &l.TruckType, &l.WeightKg, &l.PriceMinor,
		&l.PodVerified, &l.SettlementStatus, &l.DeliveredAt, &l.SettledAt,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// GetLoad reads a load outside any transaction.
func (r *LoadRepo) GetLoad(ctx context.Context, loadID int64) (*domain.Load, error) {
	l, err := scanLoad(r.db.QueryRow(ctx, `SELECT`+loadColumns+` FROM loads WHERE id = $1`, loadID))
	if err != nil {
		return nil, fmt.Errorf("get load %d: %w", loadID, err)
	}
	return l, nil
}

// GetTruck reads a truck outside any transaction.
func (r *LoadRepo) GetTruck(ctx context.Context, truckID int64) (*domain.Truck, error) {
	return (&TxRepo{q: r.db}).GetTruck(ctx, truckID)
}

// GetOffer reads an offer outside any transaction.
func (r *LoadRepo) GetOffer(ctx context.Context, offerID int64) (*domain.Offer, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, kind, load_id, truck_id, status, created_by, expires_at, created_at
        FROM offers
        WHERE id = $1
    `, offerID)
	o, err := scanOffer(row)
	if err != nil {
		return nil, fmt.Errorf("get offer %d: %w", offerID, err)
	}
	return o, nil
}

// InsertOffer persists a fresh PENDING offer and fills its id and creation
// time.
func (r *LoadRepo) InsertOffer(ctx context.Context, o *domain.Offer) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO offers (kind, load_id, truck_id, status, created_by, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `, string(o.Kind), o.LoadID, o.TruckID, string(o.Status), o.CreatedBy, o.ExpiresAt).
		Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert offer for load %d: %w", o.LoadID, err)
	}
	return nil
}

// ListOffersByLoad returns the offers referencing a load, newest first.
func (r *LoadRepo) ListOffersByLoad(ctx context.Context, loadID int64) ([]domain.Offer, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, kind, load_id, truck_id, status, created_by, expires_at, created_at
        FROM offers
        WHERE load_id = $1
        ORDER BY created_at DESC, id DESC
    `, loadID)
	if err != nil {
		return nil, fmt.Errorf("list offers for load %d: %w", loadID, err)
	}
	defer rows.Close()

	var out []domain.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// ListOpenLoads returns loads in an assignable status for match queries.
func (r *LoadRepo) ListOpenLoads(ctx context.Context) ([]domain.Load, error) {
	rows, err := r.db.Query(ctx, `
        SELECT`+loadColumns+`
        FROM loads
        WHERE status IN ('POSTED', 'SEARCHING', 'OFFERED')
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("list open loads: %w", err)
	}
	defer rows.Close()

	var out []domain.Load
	for rows.Next() {
		l, err := scanLoad(rows)
		if err != nil {
			return nil, fmt.Errorf("scan open load: %w", err)
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

// ListAvailableTrucks returns free trucks with their active posting, if any.
func (r *LoadRepo) ListAvailableTrucks(ctx context.Context) ([]domain.Truck, map[int64]domain.TruckPosting, error) {
	rows, err := r.db.Query(ctx, `
        SELECT t.id, t.carrier_id, t.carrier_org_id, t.type, t.max_weight_kg,
               t.current_city, t.is_available,
               p.id, p.status, p.origin_city, p.destination_city,
               p.available_from, p.available_until, p.capacity_kg
        FROM trucks t
        LEFT JOIN truck_postings p ON p.truck_id = t.id AND p.status = 'ACTIVE'
        WHERE t.is_available
        ORDER BY t.id
    `)
	if err != nil {
		return nil, nil, fmt.Errorf("list available trucks: %w", err)
	}
	defer rows.Close()

	var trucks []domain.Truck
	postings := make(map[int64]domain.TruckPosting)
	for rows.Next() {
		var (
			t              domain.Truck
			pID            *int64
			pStatus        *domain.PostingStatus
			pOrigin, pDest *string
			pFrom, pUntil  *time.Time
			pCapacity      *float64
		)
		if err := rows.Scan(
			&t.ID, &t.CarrierID, &t.CarrierOrgID, &t.Type, &t.MaxWeightKg,
			&t.CurrentCity, &t.IsAvailable,
			&pID, &pStatus, &pOrigin, &pDest, &pFrom, &pUntil, &pCapacity,
		); err != nil {
			return nil, nil, fmt.Errorf("scan available truck: %w", err)
		}
		trucks = append(trucks, t)
		if pID != nil {
			posting := domain.TruckPosting{
				ID:      *pID,
				TruckID: t.ID,
				Status:  *pStatus,
			}
			if pOrigin != nil {
				posting.OriginCity = *pOrigin
			}
			if pDest != nil {
				posting.DestinationCity = *pDest
			}
			if pFrom != nil {
				posting.AvailableFrom = *pFrom
			}
			if pUntil != nil {
				posting.AvailableUntil = *pUntil
			}
			if pCapacity != nil {
				posting.CapacityKg = *pCapacity
			}
			postings[t.ID] = posting
		}
	}
	return trucks, postings, rows.Err()
}

// querier is the subset of pgx shared by pgx.Tx and *pgxpool.Pool.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxRepo represents the transaction repository.
type TxRepo struct {
	tx pgx.Tx
	q  querier
}

func (r *TxRepo) querier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.q
}

// GetLoadForUpdate re-reads the load under a row lock. The authoritative
// status and assigned_truck_id come from this read, never from values
// fetched before the transaction began.
func (r *TxRepo) GetLoadForUpdate(ctx context.Context, loadID int64) (*domain.Load, error) {
	l, err := scanLoad(r.querier().QueryRow(ctx, `
        SELECT`+loadColumns+`
        FROM loads
        WHERE id = $1
        FOR UPDATE
    `, loadID))
	if err != nil {
		return nil, fmt.Errorf("get load %d for update: %w", loadID, err)
	}
	return l, nil
}

// GetTruck - get a truck by id.
func (r *TxRepo) GetTruck(ctx context.Context, truckID int64) (*domain.Truck, error) {
	row := r.querier().QueryRow(ctx, `
        SELECT id, carrier_id, carrier_org_id, type, max_weight_kg, current_city, is_available
        FROM trucks
        WHERE id = $1
    `, truckID)

	var t domain.Truck
	if err := row.Scan(&t.ID, &t.CarrierID, &t.CarrierOrgID, &t.Type, &t.MaxWeightKg, &t.CurrentCity, &t.IsAvailable); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get truck %d: %w", truckID, err)
	}
	return &t, nil
}

// FindActiveLoadByTruck returns the non-terminal load bound to the truck.
func (r *TxRepo) FindActiveLoadByTruck(ctx context.Context, truckID int64) (*domain.Load, error) {
	l, err := scanLoad(r.querier().QueryRow(ctx, `
        SELECT`+loadColumns+`
        FROM loads
        WHERE assigned_truck_id = $1
          AND status NOT IN ('DELIVERED', 'COMPLETED', 'CANCELLED', 'EXPIRED')
        LIMIT 1
        FOR UPDATE
    `, truckID))
	if err != nil {
		return nil, fmt.Errorf("find active load for truck %d: %w", truckID, err)
	}
	return l, nil
}

// SetLoadAssignment commits the load to the truck. The partial unique index
// on assigned_truck_id backstops concurrent commits that slip past the
// application check; callers translate 23505 into a conflict.
func (r *TxRepo) SetLoadAssignment(ctx context.Context, loadID, truckID int64) error {
	ct, err := r.querier().Exec(ctx, `
        UPDATE loads
        SET status = 'ASSIGNED', assigned_truck_id = $2, updated_at = now()
        WHERE id = $1
    `, loadID, truckID)
	if err != nil {
		return fmt.Errorf("set assignment load %d truck %d: %w", loadID, truckID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("load %d not found", loadID)
	}
	return nil
}

// ClearLoadAssignment releases the truck and moves the load to the target status.
func (r *TxRepo) ClearLoadAssignment(ctx context.Context, loadID int64, to domain.LoadStatus) error {
	ct, err := r.querier().Exec(ctx, `
        UPDATE loads
        SET status = $2, assigned_truck_id = NULL, updated_at = now()
        WHERE id = $1
    `, loadID, string(to))
	if err != nil {
		return fmt.Errorf("clear assignment load %d: %w", loadID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("load %d not found", loadID)
	}
	return nil
}

// UpdateLoadStatus - update load status.
func (r *TxRepo) UpdateLoadStatus(ctx context.Context, loadID int64, status domain.LoadStatus) error {
	sql := `UPDATE loads SET status = $2, updated_at = now() WHERE id = $1`
	if status == domain.LoadDelivered {
		sql = `UPDATE loads SET status = $2, delivered_at = now(), updated_at = now() WHERE id = $1`
	}
	ct, err := r.querier().Exec(ctx, sql, loadID, string(status))
	if err != nil {
		return fmt.Errorf("update load %d status: %w", loadID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("load %d not found", loadID)
	}
	return nil
}

// InsertTrip - insert a new trip.
func (r *TxRepo) InsertTrip(ctx context.Context, t *domain.Trip) error {
	err := r.querier().QueryRow(ctx, `
        INSERT INTO trips (load_id, truck_id, status, pickup_city, delivery_city, assigned_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, t.LoadID, t.TruckID, string(t.Status), t.PickupCity, t.DeliveryCity, t.AssignedAt).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert trip for load %d: %w", t.LoadID, err)
	}
	return nil
}

// CancelTripByLoad cancels the non-cancelled trip of a load.
func (r *TxRepo) CancelTripByLoad(ctx context.Context, loadID int64) error {
	_, err := r.querier().Exec(ctx, `
        UPDATE trips SET status = 'CANCELLED' WHERE load_id = $1 AND status <> 'CANCELLED'
    `, loadID)
	if err != nil {
		return fmt.Errorf("cancel trip for load %d: %w", loadID, err)
	}
	return nil
}

func scanOffer(row pgx.Row) (*domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(&o.ID, &o.Kind, &o.LoadID, &o.TruckID, &o.Status, &o.CreatedBy, &o.ExpiresAt, &o.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// GetOfferForUpdate re-reads an offer under a row lock.
func (r *TxRepo) GetOfferForUpdate(ctx context.Context, offerID int64) (*domain.Offer, error) {
	row := r.querier().QueryRow(ctx, `
        SELECT id, kind, load_id, truck_id, status, created_by, expires_at, created_at
        FROM offers
        WHERE id = $1
        FOR UPDATE
    `, offerID)
	o, err := scanOffer(row)
	if err != nil {
		return nil, fmt.Errorf("get offer %d for update: %w", offerID, err)
	}
	return o, nil
}

// UpdateOfferStatus - update offer status.
func (r *TxRepo) UpdateOfferStatus(ctx context.Context, offerID int64, status domain.OfferStatus) error {
	ct, err := r.querier().Exec(ctx, `
        UPDATE offers SET status = $2 WHERE id = $1
    `, offerID, string(status))
	if err != nil {
		return fmt.Errorf("update offer %d status: %w", offerID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("offer %d not found", offerID)
	}
	return nil
}

// CancelPendingOffers cancels the competing PENDING offers of a load.
func (r *TxRepo) CancelPendingOffers(ctx context.Context, loadID, exceptOfferID int64) (int64, error) {
	ct, err := r.querier().Exec(ctx, `
        UPDATE offers
        SET status = 'CANCELLED'
        WHERE load_id = $1 AND status = 'PENDING' AND id <> $2
    `, loadID, exceptOfferID)
	if err != nil {
		return 0, fmt.Errorf("cancel pending offers for load %d: %w", loadID, err)
	}
	return ct.RowsAffected(), nil
}

// MarkPostingMatched marks the truck's ACTIVE posting as MATCHED.
func (r *TxRepo) MarkPostingMatched(ctx context.Context, truckID int64) error {
	_, err := r.querier().Exec(ctx, `
        UPDATE truck_postings SET status = 'MATCHED' WHERE truck_id = $1 AND status = 'ACTIVE'
    `, truckID)
	if err != nil {
		return fmt.Errorf("mark posting matched for truck %d: %w", truckID, err)
	}
	return nil
}

// ReactivatePosting restores the truck's MATCHED posting to ACTIVE.
func (r *TxRepo) ReactivatePosting(ctx context.Context, truckID int64) error {
	_, err := r.querier().Exec(ctx, `
        UPDATE truck_postings SET status = 'ACTIVE' WHERE truck_id = $1 AND status = 'MATCHED'
    `, truckID)
	if err != nil {
		return fmt.Errorf("reactivate posting for truck %d: %w", truckID, err)
	}
	return nil
}

// SetTruckAvailability - set truck availability flag.
func (r *TxRepo) SetTruckAvailability(ctx context.Context, truckID int64, available bool) error {
	ct, err := r.querier().Exec(ctx, `
        UPDATE trucks SET is_available = $2 WHERE id = $1
    `, truckID, available)
	if err != nil {
		return fmt.Errorf("set truck %d availability: %w", truckID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("truck %d not found", truckID)
	}
	return nil
}

// InsertEvent appends a load event. Marker event types carry a unique
// (load_id, event_type) constraint; a duplicate surfaces as 23505.
func (r *TxRepo) InsertEvent(ctx context.Context, ev *domain.LoadEvent) error {
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	err = r.querier().QueryRow(ctx, `
        INSERT INTO load_events (load_id, event_type, actor_id, payload, created_at)
        VALUES ($1, $2, $3, $4, now())
        RETURNING id
    `, ev.LoadID, string(ev.Type), ev.ActorID, payload).Scan(&ev.ID)
	if err != nil {
		return fmt.Errorf("insert event %s for load %d: %w", ev.Type, ev.LoadID, err)
	}
	return nil
}

// HasEvent reports whether a marker event already exists for the load.
func (r *TxRepo) HasEvent(ctx context.Context, loadID int64, t domain.EventType) (bool, error) {
	var exists bool
	err := r.querier().QueryRow(ctx, `
        SELECT EXISTS (SELECT 1 FROM load_events WHERE load_id = $1 AND event_type = $2)
    `, loadID, string(t)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has event %s for load %d: %w", t, loadID, err)
	}
	return exists, nil
}

// AppendOutbox records a side-effect intent in the same transaction as the
// primary write.
func (r *TxRepo) AppendOutbox(ctx context.Context, loadID int64, kind string, payload []byte) error {
	_, err := r.querier().Exec(ctx, `
        INSERT INTO outbox (load_id, kind, payload, attempts, created_at)
        VALUES ($1, $2, $3, 0, now())
    `, loadID, kind, payload)
	if err != nil {
		return fmt.Errorf("append outbox %s for load %d: %w", kind, loadID, err)
	}
	return nil
}

// HasEvent reports whether a marker event exists, outside any transaction.
func (r *LoadRepo) HasEvent(ctx context.Context, loadID int64, t domain.EventType) (bool, error) {
	return (&TxRepo{q: r.db}).HasEvent(ctx, loadID, t)
}

// InsertEvent appends a load event outside any transaction.
func (r *LoadRepo) InsertEvent(ctx context.Context, ev *domain.LoadEvent) error {
	return (&TxRepo{q: r.db}).InsertEvent(ctx, ev)
}

// ClearStaleTruckBindings detaches the truck from terminal loads.
func (r *TxRepo) ClearStaleTruckBindings(ctx context.Context, truckID int64) (int64, error) {
	ct, err := r.querier().Exec(ctx, `
        UPDATE loads
        SET assigned_truck_id = NULL, updated_at = now()
        WHERE assigned_truck_id = $1
          AND status IN ('DELIVERED', 'COMPLETED', 'CANCELLED', 'EXPIRED')
    `, truckID)
	if err != nil {
		return 0, fmt.Errorf("clear stale bindings for truck %d: %w", truckID, err)
	}
	return ct.RowsAffected(), nil
}

// UpdateTripStatusByLoad moves the load's live trip to the given status.
func (r *TxRepo) UpdateTripStatusByLoad(ctx context.Context, loadID int64, status domain.TripStatus) error {
	_, err := r.querier().Exec(ctx, `
        UPDATE trips SET status = $2 WHERE load_id = $1 AND status <> 'CANCELLED'
    `, loadID, string(status))
	if err != nil {
		return fmt.Errorf("update trip status for load %d: %w", loadID, err)
	}
	return nil
}

// UpdateTripTracking stores the tracking URL on the load's live trip.
func (r *LoadRepo) UpdateTripTracking(ctx context.Context, loadID int64, url string) error {
	_, err := r.db.Exec(ctx, `
        UPDATE trips SET tracking_url = $2 WHERE load_id = $1 AND status <> 'CANCELLED'
    `, loadID, url)
	if err != nil {
		return fmt.Errorf("update trip tracking for load %d: %w", loadID, err)
	}
	return nil
}
