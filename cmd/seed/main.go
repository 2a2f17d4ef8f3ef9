// Command seed creates the database schema and inserts demo data: one
// retiree with a pension history, medicines and a couple of government
// updates, plus a volunteer in the same district.
package main

import (
	"context"
	"log"
	"time"

	"github.com/alok-48/GuruMitra/internal/models"
	"github.com/alok-48/GuruMitra/internal/repository"
	"github.com/alok-48/GuruMitra/pkg/config"
	"github.com/alok-48/GuruMitra/pkg/logger"
	"github.com/alok-48/GuruMitra/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
  id UUID PRIMARY KEY,
  phone TEXT UNIQUE NOT NULL,
  name TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'retiree',
  date_of_birth DATE,
  language TEXT DEFAULT 'hi',
  district TEXT DEFAULT '',
  state TEXT DEFAULT '',
  emergency_contact TEXT DEFAULT '',
  is_active BOOLEAN DEFAULT TRUE,
  created_at TIMESTAMPTZ DEFAULT now(),
  updated_at TIMESTAMPTZ DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_users_phone ON users(phone);

CREATE TABLE IF NOT EXISTS otp_codes (
  id UUID PRIMARY KEY,
  phone TEXT NOT NULL,
  code_hash TEXT NOT NULL,
  expires_at TIMESTAMPTZ NOT NULL,
  is_used BOOLEAN DEFAULT FALSE,
  created_at TIMESTAMPTZ DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_otp_phone ON otp_codes(phone);

CREATE TABLE IF NOT EXISTS documents (
  id UUID PRIMARY KEY,
  user_id UUID NOT NULL REFERENCES users(id),
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  file_path TEXT NOT NULL,
  file_type TEXT DEFAULT '',
  file_size BIGINT DEFAULT 0,
  ocr_text TEXT DEFAULT '',
  expiry_date DATE,
  tags TEXT[] DEFAULT '{}',
  is_verified BOOLEAN DEFAULT FALSE,
  created_at TIMESTAMPTZ DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_docs_user ON documents(user_id);
CREATE INDEX IF NOT EXISTS idx_docs_category ON documents(category);

CREATE TABLE IF NOT EXISTS pension_data (
  id UUID PRIMARY KEY,
  user_id UUID NOT NULL REFERENCES users(id),
  pension_type TEXT DEFAULT 'government',
  ppo_number TEXT DEFAULT '',
  bank_name TEXT DEFAULT '',
  bank_account TEXT DEFAULT '',
  monthly_amount DOUBLE PRECISION DEFAULT 0,
  status TEXT DEFAULT 'active',
  created_at TIMESTAMPTZ DEFAULT now(),
  updated_at TIMESTAMPTZ DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_pension_user ON pension_data(user_id);

CREATE TABLE IF NOT EXISTS pension_payments (
  id UUID PRIMARY KEY,
  pension_id UUID NOT NULL REFERENCES pension_data(id),
  user_id UUID NOT NULL REFERENCES users(id),
  amount DOUBLE PRECISION NOT NULL,
  credited_date DATE NOT NULL,
  month_year TEXT NOT NULL,
  status TEXT DEFAULT 'credited',
  created_at TIMESTAMPTZ DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_payments_user ON pension_payments(user_id);

CREATE TABLE IF NOT EXISTS medicines (
  id UUID PRIMARY KEY,
  user_id UUID NOT NULL REFERENCES users(id),
  name TEXT NOT NULL,
  dosage TEXT DEFAULT '',
  frequency TEXT NOT NULL DEFAULT 'daily',
  times TEXT[] NOT NULL,
  start_date DATE NOT NULL,
  end_date DATE,
  is_active BOOLEAN DEFAULT TRUE,
  created_at TIMESTAMPTZ DEFAULT now()
);

CREATE TABLE IF NOT EXISTS medicine_logs (
  id UUID PRIMARY KEY,
  medicine_id UUID NOT NULL REFERENCES medicines(id),
  user_id UUID NOT NULL REFERENCES users(id),
  scheduled_time TIMESTAMPTZ NOT NULL,
  taken_at TIMESTAMPTZ,
  status TEXT DEFAULT 'pending',
  created_at TIMESTAMPTZ DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_medlog_user ON medicine_logs(user_id);

CREATE TABLE IF NOT EXISTS help_requests (
  id UUID PRIMARY KEY,
  user_id UUID NOT NULL REFERENCES users(id),
  category TEXT NOT NULL,
  description TEXT DEFAULT '',
  urgency TEXT DEFAULT 'normal',
  status TEXT DEFAULT 'open',
  assigned_volunteer_id UUID,
  location TEXT DEFAULT '',
  resolved_at TIMESTAMPTZ,
  created_at TIMESTAMPTZ DEFAULT now(),
  updated_at TIMESTAMPTZ DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_help_user ON help_requests(user_id);
CREATE INDEX IF NOT EXISTS idx_help_status ON help_requests(status);

CREATE TABLE IF NOT EXISTS notifications (
  id UUID PRIMARY KEY,
  user_id UUID NOT NULL REFERENCES users(id),
  title TEXT NOT NULL,
  body TEXT DEFAULT '',
  type TEXT DEFAULT 'general',
  is_read BOOLEAN DEFAULT FALSE,
  created_at TIMESTAMPTZ DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_notif_user ON notifications(user_id);

CREATE TABLE IF NOT EXISTS gov_updates (
  id UUID PRIMARY KEY,
  title TEXT NOT NULL,
  original_text TEXT DEFAULT '',
  simplified_text TEXT DEFAULT '',
  category TEXT DEFAULT '',
  action_required BOOLEAN DEFAULT FALSE,
  action_deadline DATE,
  source_url TEXT DEFAULT '',
  is_verified BOOLEAN DEFAULT TRUE,
  published_at TIMESTAMPTZ DEFAULT now(),
  created_at TIMESTAMPTZ DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_govupdates_cat ON gov_updates(category);

CREATE TABLE IF NOT EXISTS volunteers (
  user_id UUID PRIMARY KEY REFERENCES users(id),
  district TEXT DEFAULT '',
  is_available BOOLEAN DEFAULT TRUE,
  rating DOUBLE PRECISION DEFAULT 5.0,
  total_helps INTEGER DEFAULT 0,
  created_at TIMESTAMPTZ DEFAULT now()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Creating schema")
	if _, err := db.Exec(ctx, schema); err != nil {
		appLogger.Fatal("Schema creation failed", zap.Error(err))
	}

	appLogger.Info("Inserting demo data")
	if err := seedDemoData(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Seeding failed", zap.Error(err))
	}

	appLogger.Info("Seeding completed")
}

func seedDemoData(ctx context.Context, db *pgxpool.Pool, appLogger *zap.Logger) error {
	userRepo := repository.NewUserRepository(db, appLogger)
	pensionRepo := repository.NewPensionRepository(db, appLogger)
	medRepo := repository.NewMedicineRepository(db, appLogger)
	notifRepo := repository.NewNotificationRepository(db, appLogger)
	updateRepo := repository.NewGovUpdateRepository(db, appLogger)

	if existing, err := userRepo.GetByPhone(ctx, "9876543210"); err == nil {
		appLogger.Info("Demo data already present", zap.String("user_id", existing.ID.String()))
		return nil
	}

	now := time.Now()
	dob := time.Date(1955, 3, 15, 0, 0, 0, 0, time.UTC)

	retiree := &models.User{
		ID:               uuid.New(),
		Phone:            "9876543210",
		Name:             "Ramesh Kumar Sharma",
		Role:             models.RoleRetiree,
		DateOfBirth:      &dob,
		Language:         "hi",
		District:         "Bhopal",
		State:            "Madhya Pradesh",
		EmergencyContact: "9876543211",
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	family := &models.User{
		ID:        uuid.New(),
		Phone:     "9876543211",
		Name:      "Suresh Sharma",
		Role:      models.RoleFamily,
		Language:  "hi",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	volunteer := &models.User{
		ID:        uuid.New(),
		Phone:     "9876543212",
		Name:      "Priya Verma",
		Role:      models.RoleVolunteer,
		Language:  "hi",
		District:  "Bhopal",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, u := range []*models.User{retiree, family, volunteer} {
		if err := userRepo.Create(ctx, u); err != nil {
			return err
		}
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO volunteers (user_id, district, is_available) VALUES ($1, $2, TRUE)`,
		volunteer.ID, volunteer.District); err != nil {
		return err
	}

	pension := &models.PensionData{
		ID:            uuid.New(),
		UserID:        retiree.ID,
		PensionType:   "government",
		PPONumber:     "PPO/2015/123456",
		BankName:      "State Bank of India",
		BankAccount:   "XXXX1234",
		MonthlyAmount: 35000,
		Status:        models.PensionActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := pensionRepo.Create(ctx, pension); err != nil {
		return err
	}

	for i := 0; i < 6; i++ {
		month := now.AddDate(0, -i, 0)
		credited := time.Date(month.Year(), month.Month(), 28, 0, 0, 0, 0, time.UTC)
		payment := &models.PensionPayment{
			ID:           uuid.New(),
			PensionID:    pension.ID,
			UserID:       retiree.ID,
			Amount:       35000,
			CreditedDate: credited,
			MonthYear:    credited.Format("2006-01"),
			Status:       "credited",
			CreatedAt:    now,
		}
		if err := pensionRepo.CreatePayment(ctx, payment); err != nil {
			return err
		}
	}

	medicines := []*models.Medicine{
		{
			ID:        uuid.New(),
			UserID:    retiree.ID,
			Name:      "Amlodipine",
			Dosage:    "5mg",
			Frequency: "daily",
			Times:     []string{"08:00"},
			StartDate: now.AddDate(0, -2, 0),
			IsActive:  true,
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			UserID:    retiree.ID,
			Name:      "Metformin",
			Dosage:    "500mg",
			Frequency: "twice_daily",
			Times:     []string{"08:00", "20:00"},
			StartDate: now.AddDate(0, -2, 0),
			IsActive:  true,
			CreatedAt: now,
		},
	}
	for _, med := range medicines {
		if err := medRepo.Create(ctx, med); err != nil {
			return err
		}
	}

	deadline := time.Date(now.Year(), 11, 30, 0, 0, 0, 0, time.UTC)
	updates := []*models.GovUpdate{
		{
			ID:             uuid.New(),
			Title:          "DA Increase for Pensioners",
			OriginalText:   "The Government has decided to increase the Dearness Allowance to Central Government pensioners/family pensioners from the existing rate of 50% to 53% of the Basic Pension/Family Pension.",
			SimplifiedText: "आपकी पेंशन में महंगाई भत्ता (DA) 50% से बढ़कर 53% हो गया है। इसका मतलब है कि आपको हर महीने पहले से ज़्यादा पेंशन मिलेगी।",
			Category:       "pension",
			IsVerified:     true,
			PublishedAt:    now,
			CreatedAt:      now,
		},
		{
			ID:             uuid.New(),
			Title:          "Life Certificate Submission Deadline",
			OriginalText:   "All pensioners are required to submit their Digital Life Certificate (Jeevan Pramaan) by November 30. Pension disbursement shall be suspended for accounts without a valid certificate.",
			SimplifiedText: "आपको अपना जीवन प्रमाण पत्र (Life Certificate) 30 नवंबर तक जमा करना है। यह हर साल करना ज़रूरी है ताकि आपकी पेंशन जारी रहे।",
			Category:       "pension",
			ActionRequired: true,
			ActionDeadline: &deadline,
			IsVerified:     true,
			PublishedAt:    now,
			CreatedAt:      now,
		},
	}
	for _, update := range updates {
		if err := updateRepo.Create(ctx, update); err != nil {
			return err
		}
	}

	welcome := &models.Notification{
		ID:        uuid.New(),
		UserID:    retiree.ID,
		Title:     "स्वागत है!",
		Body:      "गुरुमित्र में आपका स्वागत है। यहाँ आपकी सेवा में हम हमेशा तैयार हैं।",
		Type:      models.NotificationGeneral,
		CreatedAt: now,
	}
	if err := notifRepo.Create(ctx, welcome); err != nil {
		return err
	}

	appLogger.Info("Demo user created",
		zap.String("user_id", retiree.ID.String()),
		zap.String("phone", retiree.Phone))
	return nil
}
