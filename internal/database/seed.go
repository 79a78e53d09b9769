package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customer-portal/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type seedCategory struct {
	Name        string
	Slug        string
	Description string
	SortOrder   int
}

type seedImage struct {
	URL       string
	Alt       string
	IsPrimary bool
}

type seedSpec struct {
	Name  string
	Value string
	Unit  string
}

type seedProduct struct {
	Name             string
	SKU              string
	CategorySlug     string
	ShortDescription string
	Description      string
	Price            float64
	Images           []seedImage
	Specs            []seedSpec
}

type seedUser struct {
	Email        string
	FirstName    string
	LastName     string
	CustomerCode string
	Role         domain.UserRole
}

type seedNews struct {
	Title     string
	Summary   string
	Content   string
	AgeDays   int
	ExpiresIn int
}

type seedOrderItem struct {
	SKU      string
	Quantity int
}

type seedOrder struct {
	CustomerCode string
	CustomerName string
	AgeDays      int
	Status       domain.OrderStatus
	Items        []seedOrderItem
}

var seedCategories = []seedCategory{
	{"Frameless Shower Doors", "frameless-shower-doors", "Heavy glass enclosures without metal framing.", 1},
	{"Semi-Frameless Shower Doors", "semi-frameless-shower-doors", "Minimal framing with a clean look.", 2},
	{"Sliding Shower Doors", "sliding-shower-doors", "Bypass and barn-style sliding systems.", 3},
	{"Hardware", "hardware", "Hinges, handles, clamps and seals.", 4},
}

var seedProducts = []seedProduct{
	{
		Name:             "Aurora Frameless Pivot Door",
		SKU:              "ASD-FPD-3672",
		CategorySlug:     "frameless-shower-doors",
		ShortDescription: "3/8\" clear glass pivot door.",
		Description:      "Frameless pivot door in 3/8\" tempered clear glass with polished chrome hinges.",
		Price:            1249.00,
		Images: []seedImage{
			{"/images/products/aurora-pivot.jpg", "Aurora pivot door", true},
			{"/images/products/aurora-pivot-detail.jpg", "Aurora hinge detail", false},
		},
		Specs: []seedSpec{
			{"Width", "36", "in"},
			{"Height", "72", "in"},
			{"Glass Thickness", "3/8", "in"},
		},
	},
	{
		Name:             "Cascade Frameless Inline Panel",
		SKU:              "ASD-FIP-6072",
		CategorySlug:     "frameless-shower-doors",
		ShortDescription: "Door plus fixed panel for alcoves.",
		Description:      "Inline door and panel combination for 60\" alcoves.",
		Price:            1899.00,
		Images: []seedImage{
			{"/images/products/cascade-inline.jpg", "Cascade inline panel", true},
		},
		Specs: []seedSpec{
			{"Width", "60", "in"},
			{"Height", "76", "in"},
		},
	},
	{
		Name:             "Meridian Semi-Frameless Door",
		SKU:              "ASD-SFD-3270",
		CategorySlug:     "semi-frameless-shower-doors",
		ShortDescription: "1/4\" glass with header bar.",
		Description:      "Semi-frameless hinged door with a brushed nickel header.",
		Price:            749.00,
		Images: []seedImage{
			{"/images/products/meridian.jpg", "Meridian door", true},
		},
		Specs: []seedSpec{
			{"Width", "32", "in"},
			{"Finish", "Brushed Nickel", ""},
		},
	},
	{
		Name:             "Sonoran Bypass Slider",
		SKU:              "ASD-SBS-6070",
		CategorySlug:     "sliding-shower-doors",
		ShortDescription: "Two-panel bypass for tubs and showers.",
		Description:      "Bypass slider with soft-close rollers and a 60\" track.",
		Price:            989.00,
		Images: []seedImage{
			{"/images/products/sonoran-slider.jpg", "Sonoran slider", true},
		},
		Specs: []seedSpec{
			{"Track Length", "60", "in"},
			{"Rollers", "Soft-close", ""},
		},
	},
	{
		Name:             "Heavy Duty Glass-to-Wall Hinge",
		SKU:              "ASD-HW-HNG01",
		CategorySlug:     "hardware",
		ShortDescription: "Solid brass hinge for 3/8\"-1/2\" glass.",
		Description:      "Solid brass glass-to-wall hinge rated for doors up to 110 lb.",
		Price:            89.50,
		Specs: []seedSpec{
			{"Load Rating", "110", "lb"},
		},
	},
}

var seedUsers = []seedUser{
	{"admin@arizonashowerdoor.com", "Portal", "Admin", "ASD-ADMIN", domain.RoleAdmin},
	{"buyer@desertbuilders.com", "Dana", "Reyes", "CUST-1001", domain.RoleCustomer},
	{"orders@canyonremodel.com", "Lee", "Park", "CUST-1002", domain.RoleCustomer},
}

var seedNewsItems = []seedNews{
	{"New Frameless Collection", "Meet the Aurora and Cascade lines.", "Our new frameless collection ships this month in clear and low-iron glass.", 2, 0},
	{"Holiday Schedule", "Showroom hours over the holidays.", "The Phoenix showroom closes early on December 24 and 31.", 10, 60},
	{"Hardware Price Update", "Updated pricing on brass hinges.", "Pricing on solid brass hinges changes next quarter.", 40, 0},
	{"Expired Promotion", "Spring promotion has ended.", "Thank you for joining the spring promotion.", 90, -30},
}

var seedOrders = []seedOrder{
	{"CUST-1001", "Desert Builders", 5, domain.OrderStatusShipped, []seedOrderItem{{"ASD-FPD-3672", 2}, {"ASD-HW-HNG01", 4}}},
	{"CUST-1001", "Desert Builders", 20, domain.OrderStatusDelivered, []seedOrderItem{{"ASD-SBS-6070", 1}}},
	{"CUST-1001", "Desert Builders", 75, domain.OrderStatusDelivered, []seedOrderItem{{"ASD-SFD-3270", 3}}},
	{"CUST-1002", "Canyon Remodel", 1, domain.OrderStatusPending, []seedOrderItem{{"ASD-FIP-6072", 1}}},
}

// Seed loads the sample data set. Rows keyed by a natural key (slug, sku,
// email) are skipped when present; orders are only created for customers
// that have none.
func Seed(ctx context.Context, db Querier, logger *zap.Logger) error {
	now := time.Now().UTC()

	categoryIDs := make(map[string]uuid.UUID, len(seedCategories))
	for _, c := range seedCategories {
		var id uuid.UUID
		err := db.QueryRow(ctx, `
			INSERT INTO categories (name, slug, description, sort_order)
			VALUES (@name, @slug, @description, @sort_order)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`,
			pgx.NamedArgs{"name": c.Name, "slug": c.Slug, "description": c.Description, "sort_order": c.SortOrder},
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.Slug, err)
		}
		categoryIDs[c.Slug] = id
	}
	logger.Info("Seeded categories", zap.Int("count", len(categoryIDs)))

	products := make(map[string]seedProductRef, len(seedProducts))
	for _, p := range seedProducts {
		ref, err := seedOneProduct(ctx, db, p, categoryIDs[p.CategorySlug])
		if err != nil {
			return err
		}
		products[p.SKU] = ref
	}
	logger.Info("Seeded products", zap.Int("count", len(products)))

	var authorID *uuid.UUID
	for _, u := range seedUsers {
		var id uuid.UUID
		err := db.QueryRow(ctx, `
			INSERT INTO users (email, first_name, last_name, customer_code, role)
			VALUES (@email, @first_name, @last_name, @customer_code, @role)
			ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
			RETURNING id`,
			pgx.NamedArgs{
				"email":         u.Email,
				"first_name":    u.FirstName,
				"last_name":     u.LastName,
				"customer_code": u.CustomerCode,
				"role":          string(u.Role),
			},
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		if u.Role == domain.RoleAdmin && authorID == nil {
			authorID = &id
		}
	}
	logger.Info("Seeded users", zap.Int("count", len(seedUsers)))

	if err := seedNewsFeed(ctx, db, now, authorID); err != nil {
		return err
	}

	created, err := seedOrderHistory(ctx, db, now, products)
	if err != nil {
		return err
	}
	logger.Info("Seeded orders", zap.Int("created", created))

	return nil
}

type seedProductRef struct {
	ID    uuid.UUID
	Name  string
	Price float64
}

func seedOneProduct(ctx context.Context, db Querier, p seedProduct, categoryID uuid.UUID) (seedProductRef, error) {
	ref := seedProductRef{Name: p.Name, Price: p.Price}

	err := db.QueryRow(ctx, `
		INSERT INTO products (name, sku, description, short_description, price, category_id)
		VALUES (@name, @sku, @description, @short_description, @price, @category_id)
		ON CONFLICT (sku) DO NOTHING
		RETURNING id`,
		pgx.NamedArgs{
			"name":              p.Name,
			"sku":               p.SKU,
			"description":       p.Description,
			"short_description": p.ShortDescription,
			"price":             p.Price,
			"category_id":       categoryID,
		},
	).Scan(&ref.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		// Already present; dependents were written with it.
		err = db.QueryRow(ctx, `SELECT id FROM products WHERE sku = @sku`, pgx.NamedArgs{"sku": p.SKU}).Scan(&ref.ID)
		if err != nil {
			return ref, fmt.Errorf("failed to look up product %s: %w", p.SKU, err)
		}
		return ref, nil
	}
	if err != nil {
		return ref, fmt.Errorf("failed to seed product %s: %w", p.SKU, err)
	}

	for i, img := range p.Images {
		_, err := db.Exec(ctx, `
			INSERT INTO product_images (product_id, url, alt, sort_order, is_primary)
			VALUES (@product_id, @url, @alt, @sort_order, @is_primary)`,
			pgx.NamedArgs{"product_id": ref.ID, "url": img.URL, "alt": img.Alt, "sort_order": i, "is_primary": img.IsPrimary},
		)
		if err != nil {
			return ref, fmt.Errorf("failed to seed image for %s: %w", p.SKU, err)
		}
	}

	for i, spec := range p.Specs {
		var unit *string
		if spec.Unit != "" {
			unit = &spec.Unit
		}
		_, err := db.Exec(ctx, `
			INSERT INTO product_specifications (product_id, name, value, unit, sort_order)
			VALUES (@product_id, @name, @value, @unit, @sort_order)`,
			pgx.NamedArgs{"product_id": ref.ID, "name": spec.Name, "value": spec.Value, "unit": unit, "sort_order": i},
		)
		if err != nil {
			return ref, fmt.Errorf("failed to seed specification for %s: %w", p.SKU, err)
		}
	}

	return ref, nil
}

func seedNewsFeed(ctx context.Context, db Querier, now time.Time, authorID *uuid.UUID) error {
	for _, n := range seedNewsItems {
		var expiresAt *time.Time
		if n.ExpiresIn != 0 {
			t := now.AddDate(0, 0, n.ExpiresIn)
			expiresAt = &t
		}
		_, err := db.Exec(ctx, `
			INSERT INTO news (title, content, summary, published_at, expires_at, author_id)
			SELECT @title, @content, @summary, @published_at, @expires_at, @author_id
			WHERE NOT EXISTS (SELECT 1 FROM news WHERE title = @title)`,
			pgx.NamedArgs{
				"title":        n.Title,
				"content":      n.Content,
				"summary":      n.Summary,
				"published_at": now.AddDate(0, 0, -n.AgeDays),
				"expires_at":   expiresAt,
				"author_id":    authorID,
			},
		)
		if err != nil {
			return fmt.Errorf("failed to seed news %q: %w", n.Title, err)
		}
	}
	return nil
}

func seedOrderHistory(ctx context.Context, db Querier, now time.Time, products map[string]seedProductRef) (int, error) {
	existing := make(map[string]bool)
	created := 0

	for _, o := range seedOrders {
		seeded, ok := existing[o.CustomerCode]
		if !ok {
			var count int
			err := db.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE customer_code = @customer_code`,
				pgx.NamedArgs{"customer_code": o.CustomerCode}).Scan(&count)
			if err != nil {
				return created, fmt.Errorf("failed to count orders for %s: %w", o.CustomerCode, err)
			}
			seeded = count > 0
			existing[o.CustomerCode] = seeded
		}
		if seeded {
			continue
		}

		orderDate := now.AddDate(0, 0, -o.AgeDays)
		number, err := domain.GenerateOrderNumber(orderDate)
		if err != nil {
			return created, err
		}

		total := 0.0
		for _, item := range o.Items {
			total += products[item.SKU].Price * float64(item.Quantity)
		}

		var orderID uuid.UUID
		err = db.QueryRow(ctx, `
			INSERT INTO orders (
				order_number, customer_code, customer_name, order_date, total_amount, status,
				shipping_street, shipping_city, shipping_state, shipping_zip_code, shipping_country,
				billing_street, billing_city, billing_state, billing_zip_code, billing_country
			) VALUES (
				@order_number, @customer_code, @customer_name, @order_date, @total_amount, @status,
				@street, @city, @state, @zip_code, @country,
				@street, @city, @state, @zip_code, @country
			)
			RETURNING id`,
			pgx.NamedArgs{
				"order_number":  number,
				"customer_code": o.CustomerCode,
				"customer_name": o.CustomerName,
				"order_date":    orderDate,
				"total_amount":  total,
				"status":        string(o.Status),
				"street":        "1200 W Camelback Rd",
				"city":          "Phoenix",
				"state":         "AZ",
				"zip_code":      "85013",
				"country":       "USA",
			},
		).Scan(&orderID)
		if err != nil {
			return created, fmt.Errorf("failed to seed order for %s: %w", o.CustomerCode, err)
		}

		for _, item := range o.Items {
			product := products[item.SKU]
			_, err := db.Exec(ctx, `
				INSERT INTO order_items (order_id, product_id, product_name, product_sku, quantity, unit_price, total_price)
				VALUES (@order_id, @product_id, @product_name, @product_sku, @quantity, @unit_price, @total_price)`,
				pgx.NamedArgs{
					"order_id":     orderID,
					"product_id":   product.ID,
					"product_name": product.Name,
					"product_sku":  item.SKU,
					"quantity":     item.Quantity,
					"unit_price":   product.Price,
					"total_price":  product.Price * float64(item.Quantity),
				},
			)
			if err != nil {
				return created, fmt.Errorf("failed to seed order item %s: %w", item.SKU, err)
			}
		}
		created++
	}

	return created, nil
}
