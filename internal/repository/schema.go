package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schema = []struct {
	table string
	ddl   string
}{
	{"users", `
CREATE TABLE IF NOT EXISTS users (
	id VARCHAR(64) PRIMARY KEY,
	email VARCHAR(255) NOT NULL UNIQUE,
	password_hash TEXT,
	google_id VARCHAR(255) UNIQUE,
	first_name VARCHAR(255) NOT NULL DEFAULT '',
	last_name VARCHAR(255) NOT NULL DEFAULT '',
	profile_image_url TEXT NOT NULL DEFAULT '',
	phone VARCHAR(50) NOT NULL DEFAULT '',
	nationality VARCHAR(100) NOT NULL DEFAULT '',
	preferred_language VARCHAR(10) NOT NULL DEFAULT 'en',
	role VARCHAR(20) NOT NULL DEFAULT 'user',
	is_email_verified BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"admin_bootstrap", `
CREATE TABLE IF NOT EXISTS admin_bootstrap (
	id SMALLINT PRIMARY KEY CHECK (id = 1),
	user_id VARCHAR(64) NOT NULL,
	claimed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"sessions", `
CREATE TABLE IF NOT EXISTS sessions (
	sid VARCHAR(128) PRIMARY KEY,
	user_id VARCHAR(64) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	expires_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions (expires_at);`},
	{"tour_packages", `
CREATE TABLE IF NOT EXISTS tour_packages (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	product_name VARCHAR(255) NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	overview TEXT NOT NULL DEFAULT '',
	destination VARCHAR(255) NOT NULL,
	duration_days INTEGER NOT NULL DEFAULT 0,
	duration_nights INTEGER NOT NULL DEFAULT 0,
	duration_hours INTEGER NOT NULL DEFAULT 0,
	duration_minutes INTEGER NOT NULL DEFAULT 0,
	min_passenger_count INTEGER NOT NULL DEFAULT 1,
	max_passenger_count INTEGER NOT NULL DEFAULT 0,
	starting_price NUMERIC(12, 2) NOT NULL,
	strike_through_price NUMERIC(12, 2),
	pricing_tiers JSONB,
	currency CHAR(3) NOT NULL DEFAULT 'INR',
	image_url TEXT NOT NULL DEFAULT '',
	gallery JSONB NOT NULL DEFAULT '[]',
	inclusions JSONB NOT NULL DEFAULT '[]',
	exclusions JSONB NOT NULL DEFAULT '[]',
	highlights JSONB NOT NULL DEFAULT '[]',
	itinerary JSONB,
	rating NUMERIC(2, 1) NOT NULL DEFAULT 0,
	review_count INTEGER NOT NULL DEFAULT 0,
	featured BOOLEAN NOT NULL DEFAULT FALSE,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"events", `
CREATE TABLE IF NOT EXISTS events (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	location VARCHAR(255) NOT NULL,
	start_date TIMESTAMPTZ NOT NULL,
	end_date TIMESTAMPTZ,
	image_url TEXT NOT NULL DEFAULT '',
	website_url TEXT NOT NULL DEFAULT '',
	currency CHAR(3) NOT NULL DEFAULT 'INR',
	rating NUMERIC(2, 1) NOT NULL DEFAULT 0,
	review_count INTEGER NOT NULL DEFAULT 0,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"bookings", `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGSERIAL PRIMARY KEY,
	user_id VARCHAR(64) NOT NULL REFERENCES users(id),
	package_id BIGINT REFERENCES tour_packages(id),
	event_id BIGINT REFERENCES events(id),
	travel_date DATE,
	adults INTEGER NOT NULL CHECK (adults >= 1),
	children INTEGER NOT NULL DEFAULT 0 CHECK (children >= 0),
	contact_name VARCHAR(255) NOT NULL,
	contact_email VARCHAR(255) NOT NULL,
	contact_phone VARCHAR(50) NOT NULL DEFAULT '',
	hotel_category VARCHAR(20) NOT NULL DEFAULT '3_star',
	flight_included BOOLEAN NOT NULL DEFAULT FALSE,
	total_amount NUMERIC(12, 2) NOT NULL,
	currency CHAR(3) NOT NULL DEFAULT 'INR',
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
	order_id VARCHAR(255) UNIQUE,
	payment_id VARCHAR(255) UNIQUE,
	special_requests TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (num_nonnulls(package_id, event_id) = 1)
);
CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings (user_id);`},
	{"travelers", `
CREATE TABLE IF NOT EXISTS travelers (
	id BIGSERIAL PRIMARY KEY,
	booking_id BIGINT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
	type VARCHAR(10) NOT NULL,
	first_name VARCHAR(255) NOT NULL,
	last_name VARCHAR(255) NOT NULL,
	date_of_birth DATE,
	gender VARCHAR(20) NOT NULL DEFAULT '',
	nationality VARCHAR(100) NOT NULL DEFAULT '',
	passport_number VARCHAR(50) NOT NULL DEFAULT '',
	passport_expiry DATE,
	dietary_requirements TEXT NOT NULL DEFAULT '',
	medical_conditions TEXT NOT NULL DEFAULT '',
	emergency_contact_name VARCHAR(255) NOT NULL DEFAULT '',
	emergency_contact_phone VARCHAR(50) NOT NULL DEFAULT '',
	special_requests TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"payments", `
CREATE TABLE IF NOT EXISTS payments (
	id BIGSERIAL PRIMARY KEY,
	booking_id BIGINT REFERENCES bookings(id),
	user_id VARCHAR(64) NOT NULL REFERENCES users(id),
	order_id VARCHAR(255) NOT NULL UNIQUE,
	payment_id VARCHAR(255),
	signature TEXT,
	amount NUMERIC(12, 2) NOT NULL,
	currency CHAR(3) NOT NULL DEFAULT 'INR',
	status VARCHAR(20) NOT NULL DEFAULT 'created',
	method VARCHAR(50),
	draft JSONB NOT NULL,
	failure_reason TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"availability", `
CREATE TABLE IF NOT EXISTS availability (
	id BIGSERIAL PRIMARY KEY,
	package_id BIGINT REFERENCES tour_packages(id),
	event_id BIGINT REFERENCES events(id),
	date DATE NOT NULL,
	total_slots INTEGER NOT NULL CHECK (total_slots >= 0),
	booked_slots INTEGER NOT NULL DEFAULT 0,
	price NUMERIC(12, 2),
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (booked_slots >= 0 AND booked_slots <= total_slots),
	CHECK (num_nonnulls(package_id, event_id) = 1)
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_availability_package_date ON availability (package_id, date) WHERE active AND package_id IS NOT NULL;
CREATE UNIQUE INDEX IF NOT EXISTS idx_availability_event_date ON availability (event_id, date) WHERE active AND event_id IS NOT NULL;`},
	{"reviews", `
CREATE TABLE IF NOT EXISTS reviews (
	id BIGSERIAL PRIMARY KEY,
	user_id VARCHAR(64) NOT NULL REFERENCES users(id),
	package_id BIGINT REFERENCES tour_packages(id),
	event_id BIGINT REFERENCES events(id),
	rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
	title VARCHAR(255) NOT NULL DEFAULT '',
	comment TEXT NOT NULL DEFAULT '',
	images JSONB NOT NULL DEFAULT '[]',
	helpful INTEGER NOT NULL DEFAULT 0,
	verified BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (num_nonnulls(package_id, event_id) = 1)
);`},
	{"translations", `
CREATE TABLE IF NOT EXISTS translations (
	id BIGSERIAL PRIMARY KEY,
	entity_type VARCHAR(50) NOT NULL,
	entity_id BIGINT NOT NULL,
	language VARCHAR(10) NOT NULL,
	field VARCHAR(100) NOT NULL,
	value TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (entity_type, entity_id, language, field)
);`},
	{"newsletters", `
CREATE TABLE IF NOT EXISTS newsletters (
	id BIGSERIAL PRIMARY KEY,
	email VARCHAR(255) NOT NULL UNIQUE,
	subscribed BOOLEAN NOT NULL DEFAULT TRUE,
	subscribed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	unsubscribed_at TIMESTAMPTZ
);`},
	{"contact_queries", `
CREATE TABLE IF NOT EXISTS contact_queries (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(50) NOT NULL DEFAULT '',
	subject VARCHAR(255) NOT NULL,
	message TEXT NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'new',
	priority VARCHAR(20) NOT NULL DEFAULT 'normal',
	assigned_to VARCHAR(64) REFERENCES users(id),
	response TEXT,
	responded_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"customers", `
CREATE TABLE IF NOT EXISTS customers (
	id BIGSERIAL PRIMARY KEY,
	user_id VARCHAR(64) REFERENCES users(id),
	email VARCHAR(255) NOT NULL UNIQUE,
	first_name VARCHAR(255) NOT NULL DEFAULT '',
	last_name VARCHAR(255) NOT NULL DEFAULT '',
	phone VARCHAR(50) NOT NULL DEFAULT '',
	company VARCHAR(255) NOT NULL DEFAULT '',
	customer_type VARCHAR(20) NOT NULL DEFAULT 'individual',
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	source VARCHAR(50) NOT NULL DEFAULT 'website',
	tags JSONB NOT NULL DEFAULT '[]',
	notes TEXT NOT NULL DEFAULT '',
	assigned_to VARCHAR(64) REFERENCES users(id),
	total_spent NUMERIC(12, 2) NOT NULL DEFAULT 0,
	total_bookings INTEGER NOT NULL DEFAULT 0,
	last_booking_date TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"customer_interactions", `
CREATE TABLE IF NOT EXISTS customer_interactions (
	id BIGSERIAL PRIMARY KEY,
	customer_id BIGINT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
	interaction_type VARCHAR(50) NOT NULL,
	subject VARCHAR(255) NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	booking_id BIGINT UNIQUE REFERENCES bookings(id),
	created_by VARCHAR(64) REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"leads", `
CREATE TABLE IF NOT EXISTS leads (
	id BIGSERIAL PRIMARY KEY,
	first_name VARCHAR(255) NOT NULL,
	last_name VARCHAR(255) NOT NULL DEFAULT '',
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(50) NOT NULL DEFAULT '',
	company VARCHAR(255) NOT NULL DEFAULT '',
	source VARCHAR(50) NOT NULL DEFAULT 'website',
	status VARCHAR(20) NOT NULL DEFAULT 'new',
	priority VARCHAR(20) NOT NULL DEFAULT 'normal',
	interested_in TEXT NOT NULL DEFAULT '',
	budget NUMERIC(12, 2),
	travel_date DATE,
	notes TEXT NOT NULL DEFAULT '',
	assigned_to VARCHAR(64) REFERENCES users(id),
	converted_customer_id BIGINT REFERENCES customers(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"lead_activities", `
CREATE TABLE IF NOT EXISTS lead_activities (
	id BIGSERIAL PRIMARY KEY,
	lead_id BIGINT NOT NULL REFERENCES leads(id) ON DELETE CASCADE,
	activity_type VARCHAR(50) NOT NULL,
	subject VARCHAR(255) NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	outcome TEXT NOT NULL DEFAULT '',
	scheduled_at TIMESTAMPTZ,
	completed_at TIMESTAMPTZ,
	created_by VARCHAR(64) REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"opportunities", `
CREATE TABLE IF NOT EXISTS opportunities (
	id BIGSERIAL PRIMARY KEY,
	customer_id BIGINT REFERENCES customers(id),
	lead_id BIGINT REFERENCES leads(id),
	title VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	value NUMERIC(12, 2) NOT NULL DEFAULT 0,
	stage VARCHAR(30) NOT NULL DEFAULT 'prospecting',
	probability INTEGER NOT NULL DEFAULT 0 CHECK (probability BETWEEN 0 AND 100),
	expected_close_date DATE,
	assigned_to VARCHAR(64) REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"tasks", `
CREATE TABLE IF NOT EXISTS tasks (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	task_type VARCHAR(50) NOT NULL DEFAULT 'follow_up',
	priority VARCHAR(20) NOT NULL DEFAULT 'normal',
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	due_date TIMESTAMPTZ,
	assigned_to VARCHAR(64) REFERENCES users(id),
	related_customer_id BIGINT REFERENCES customers(id),
	related_lead_id BIGINT REFERENCES leads(id),
	related_opportunity_id BIGINT REFERENCES opportunities(id),
	completed_at TIMESTAMPTZ,
	created_by VARCHAR(64) REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"email_templates", `
CREATE TABLE IF NOT EXISTS email_templates (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	subject VARCHAR(255) NOT NULL,
	content TEXT NOT NULL,
	category VARCHAR(50) NOT NULL DEFAULT 'general',
	variables JSONB NOT NULL DEFAULT '[]',
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"email_campaigns", `
CREATE TABLE IF NOT EXISTS email_campaigns (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	subject VARCHAR(255) NOT NULL,
	content TEXT NOT NULL,
	template_id BIGINT REFERENCES email_templates(id),
	target_audience JSONB NOT NULL DEFAULT '{}',
	status VARCHAR(20) NOT NULL DEFAULT 'draft',
	scheduled_at TIMESTAMPTZ,
	sent_at TIMESTAMPTZ,
	sent_count INTEGER NOT NULL DEFAULT 0,
	failed_count INTEGER NOT NULL DEFAULT 0,
	created_by VARCHAR(64) REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"events_log", `
CREATE TABLE IF NOT EXISTS events_log (
	event_id UUID PRIMARY KEY,
	published_at TIMESTAMPTZ NOT NULL,
	event_name VARCHAR(255) NOT NULL,
	event_payload JSONB NOT NULL
);`},
}

func InitializeDBSchema(db *sqlx.DB) error {
	for _, s := range schema {
		_, err := db.ExecContext(context.Background(), s.ddl)
		if err != nil {
			return fmt.Errorf("failed to create %s table: %w", s.table, err)
		}
	}

	return nil
}
