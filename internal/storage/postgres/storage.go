package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/greencart/storefront/internal/domain/errors"
	"github.com/greencart/storefront/internal/domain/model"
	"github.com/greencart/storefront/internal/domain/repository"
)

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type addressRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Addresses() repository.AddressRepository {
	return &addressRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            cart_items JSONB NOT NULL DEFAULT '{}',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            category TEXT NOT NULL,
            price BIGINT NOT NULL,
            offer_price BIGINT NOT NULL,
            images TEXT[] NOT NULL DEFAULT '{}',
            in_stock BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            email TEXT NOT NULL,
            street TEXT NOT NULL,
            city TEXT NOT NULL,
            state TEXT NOT NULL,
            zipcode TEXT NOT NULL,
            country TEXT NOT NULL,
            phone TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            address_id BIGINT NOT NULL REFERENCES addresses(id),
            amount BIGINT NOT NULL,
            payment_type TEXT NOT NULL,
            is_paid BOOLEAN NOT NULL DEFAULT FALSE,
            gateway_order_id TEXT,
            gateway_payment_id TEXT,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            quantity BIGINT NOT NULL,
            unit_price BIGINT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_pending ON orders(created_at) WHERE payment_type = 'Online' AND NOT is_paid`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = passwordHash
	u.CartItems = map[string]int64{}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, cart_items, created_at FROM users WHERE email=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, cart_items, created_at FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CartItems, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if u.CartItems == nil {
		u.CartItems = map[string]int64{}
	}
	return &u, nil
}

func (r *userRepository) UpdateCart(ctx context.Context, userID int64, cart map[string]int64) error {
	const query = `UPDATE users SET cart_items=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, cart, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, category, price, offer_price, images, in_stock)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	stored := *product
	err := r.storage.pool.QueryRow(ctx, query,
		product.Name, product.Category, product.Price, product.OfferPrice, product.Images, product.InStock,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, name, category, price, offer_price, images, in_stock, created_at
                   FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.OfferPrice, &p.Images, &p.InStock, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, category, price, offer_price, images, in_stock, created_at
                   FROM products ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.OfferPrice, &p.Images, &p.InStock, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) SetStock(ctx context.Context, id int64, inStock bool) error {
	const query = `UPDATE products SET in_stock=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, inStock, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- AddressRepository implementation ---

func (r *addressRepository) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	const query = `INSERT INTO addresses (user_id, first_name, last_name, email, street, city, state, zipcode, country, phone)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	stored := *address
	err := r.storage.pool.QueryRow(ctx, query,
		address.UserID, address.FirstName, address.LastName, address.Email,
		address.Street, address.City, address.State, address.Zipcode, address.Country, address.Phone,
	).Scan(&stored.ID)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	const query = `SELECT id, user_id, first_name, last_name, email, street, city, state, zipcode, country, phone
                   FROM addresses WHERE user_id=$1 ORDER BY id DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.FirstName, &a.LastName, &a.Email, &a.Street, &a.City, &a.State, &a.Zipcode, &a.Country, &a.Phone); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *addressRepository) GetForUser(ctx context.Context, id, userID int64) (*model.Address, error) {
	const query = `SELECT id, user_id, first_name, last_name, email, street, city, state, zipcode, country, phone
                   FROM addresses WHERE id=$1 AND user_id=$2`
	var a model.Address
	err := r.storage.pool.QueryRow(ctx, query, id, userID).Scan(
		&a.ID, &a.UserID, &a.FirstName, &a.LastName, &a.Email, &a.Street, &a.City, &a.State, &a.Zipcode, &a.Country, &a.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	stored := *order
	stored.Items = append([]model.OrderItem(nil), order.Items...)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (user_id, address_id, amount, payment_type, is_paid, gateway_order_id, status)
                             VALUES ($1, $2, $3, $4, $5, $6, $7)
                             RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			order.UserID, order.AddressID, order.Amount, order.PaymentType, order.IsPaid, order.GatewayOrderID, order.Status,
		).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4)`
		for _, item := range stored.Items {
			if _, err := tx.Exec(ctx, insertItem, stored.ID, item.ProductID, item.Quantity, item.UnitPrice); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, user_id, address_id, amount, payment_type, is_paid, gateway_order_id, gateway_payment_id, status, created_at, updated_at
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.AddressID, &o.Amount, &o.PaymentType, &o.IsPaid,
		&o.GatewayOrderID, &o.GatewayPaymentID, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ListConfirmedByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT o.id, o.user_id, o.address_id, o.amount, o.payment_type, o.is_paid,
                          o.gateway_order_id, o.gateway_payment_id, o.status, o.created_at, o.updated_at,
                          a.first_name, a.last_name, a.email, a.street, a.city, a.state, a.zipcode, a.country, a.phone
                   FROM orders o
                   JOIN addresses a ON a.id = o.address_id
                   WHERE o.user_id=$1 AND (o.payment_type='COD' OR o.is_paid)
                   ORDER BY o.created_at DESC`
	return r.listConfirmed(ctx, query, userID)
}

func (r *orderRepository) ListConfirmed(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT o.id, o.user_id, o.address_id, o.amount, o.payment_type, o.is_paid,
                          o.gateway_order_id, o.gateway_payment_id, o.status, o.created_at, o.updated_at,
                          a.first_name, a.last_name, a.email, a.street, a.city, a.state, a.zipcode, a.country, a.phone
                   FROM orders o
                   JOIN addresses a ON a.id = o.address_id
                   WHERE o.payment_type='COD' OR o.is_paid
                   ORDER BY o.created_at DESC`
	return r.listConfirmed(ctx, query)
}

func (r *orderRepository) listConfirmed(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	index := map[int64]int{}
	for rows.Next() {
		var o model.Order
		var a model.Address
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.AddressID, &o.Amount, &o.PaymentType, &o.IsPaid,
			&o.GatewayOrderID, &o.GatewayPaymentID, &o.Status, &o.CreatedAt, &o.UpdatedAt,
			&a.FirstName, &a.LastName, &a.Email, &a.Street, &a.City, &a.State, &a.Zipcode, &a.Country, &a.Phone,
		); err != nil {
			return nil, err
		}
		a.ID = o.AddressID
		a.UserID = o.UserID
		o.Address = &a
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	if err := r.attachItems(ctx, orders, index, ids); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) attachItems(ctx context.Context, orders []model.Order, index map[int64]int, ids []int64) error {
	const query = `SELECT oi.order_id, oi.product_id, oi.quantity, oi.unit_price,
                          p.name, p.category, p.price, p.offer_price, p.images, p.in_stock, p.created_at
                   FROM order_items oi
                   JOIN products p ON p.id = oi.product_id
                   WHERE oi.order_id = ANY($1)
                   ORDER BY oi.id`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var item model.OrderItem
		var p model.Product
		if err := rows.Scan(
			&orderID, &item.ProductID, &item.Quantity, &item.UnitPrice,
			&p.Name, &p.Category, &p.Price, &p.OfferPrice, &p.Images, &p.InStock, &p.CreatedAt,
		); err != nil {
			return err
		}
		p.ID = item.ProductID
		item.Product = &p
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return rows.Err()
}

func (r *orderRepository) MarkPaid(ctx context.Context, orderID int64, paymentID string) error {
	const query = `UPDATE orders
                   SET is_paid=TRUE, gateway_payment_id=$2, status=$3, updated_at=NOW()
                   WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, paymentID, model.OrderStatusPaymentCompleted)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) ListPendingOnline(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	const query = `SELECT id, user_id, address_id, amount, payment_type, is_paid, gateway_order_id, gateway_payment_id, status, created_at, updated_at
                   FROM orders
                   WHERE payment_type='Online' AND NOT is_paid AND gateway_order_id IS NOT NULL AND created_at < $1
                   ORDER BY created_at
                   LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.AddressID, &o.Amount, &o.PaymentType, &o.IsPaid,
			&o.GatewayOrderID, &o.GatewayPaymentID, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
