package services

import (
	"context"
	"fmt"
	"time"

	"posyandu-backend/internal/models"

	"go.uber.org/zap"
)

// DashboardStore adalah query yang dibutuhkan ringkasan dashboard admin
type DashboardStore interface {
	CountGuardiansByAdmin(ctx context.Context, adminID uint64) (int64, error)
	ChildrenByAdmin(ctx context.Context, adminID uint64) ([]models.Child, error)
	ActivitiesByChildren(ctx context.Context, childIDs []uint64) ([]models.VisitRecord, error)
	GrowthByChildren(ctx context.Context, childIDs []uint64) ([]models.VisitRecord, error)
}

// Activity satu baris riwayat imunisasi di dashboard
type Activity struct {
	Nama      string    `json:"nama"`
	Aktivitas string    `json:"aktivitas"`
	Status    string    `json:"status"`
	Tanggal   time.Time `json:"tanggal"`
}

type DashboardSummary struct {
	TotalAnggota     int64           `json:"total_anggota"`
	TotalAnak        int             `json:"total_anak"`
	RiwayatAktivitas []Activity      `json:"riwayat_aktivitas"`
	Tahun            []int           `json:"tahun"`
	TahunTerpilih    int             `json:"tahun_terpilih"`
	Pertumbuhan      []MonthlyGrowth `json:"pertumbuhan"`
	Grafik           ChartData       `json:"grafik"`
}

type DashboardService struct {
	store  DashboardStore
	policy MissingPolicy
	log    *zap.Logger
	now    func() time.Time
}

func NewDashboardService(store DashboardStore, policy MissingPolicy, log *zap.Logger) *DashboardService {
	return &DashboardService{
		store:  store,
		policy: policy,
		log:    log.Named("dashboard"),
		now:    time.Now,
	}
}

// Summary menghitung ringkasan untuk satu admin. year nil = pakai tahun default.
func (s *DashboardService) Summary(ctx context.Context, adminID uint64, year *int) (*DashboardSummary, error) {
	totalAnggota, err := s.store.CountGuardiansByAdmin(ctx, adminID)
	if err != nil {
		s.log.Error("fetch summary members", zap.Uint64("admin_id", adminID), zap.Error(err))
		return nil, fmt.Errorf("count members: %w", err)
	}

	children, err := s.store.ChildrenByAdmin(ctx, adminID)
	if err != nil {
		s.log.Error("fetch summary children", zap.Uint64("admin_id", adminID), zap.Error(err))
		return nil, fmt.Errorf("list children: %w", err)
	}

	summary := &DashboardSummary{
		TotalAnggota:     totalAnggota,
		TotalAnak:        len(children),
		RiwayatAktivitas: make([]Activity, 0),
		Tahun:            make([]int, 0),
		Pertumbuhan:      make([]MonthlyGrowth, 0),
	}

	var growthRecords []models.VisitRecord
	if len(children) > 0 {
		ids := make([]uint64, 0, len(children))
		names := make(map[uint64]string, len(children))
		for _, c := range children {
			ids = append(ids, c.ID)
			names[c.ID] = c.Nama
		}

		activities, err := s.store.ActivitiesByChildren(ctx, ids)
		if err != nil {
			s.log.Error("fetch activity history", zap.Uint64("admin_id", adminID), zap.Error(err))
			return nil, fmt.Errorf("list activities: %w", err)
		}
		for _, a := range activities {
			summary.RiwayatAktivitas = append(summary.RiwayatAktivitas, Activity{
				Nama:      orDefault(names[a.ChildID], "Tidak ada nama"),
				Aktivitas: derefOr(a.AktivitasImunisasi, "Tidak ada aktivitas"),
				Status:    derefOr(a.StatusImunisasi, "Tidak ada status"),
				Tanggal:   a.DibuatPada,
			})
		}

		growthRecords, err = s.store.GrowthByChildren(ctx, ids)
		if err != nil {
			s.log.Error("fetch average growth data", zap.Uint64("admin_id", adminID), zap.Error(err))
			return nil, fmt.Errorf("list growth: %w", err)
		}
	}

	summary.Tahun = VisitYears(growthRecords)
	if year != nil {
		summary.TahunTerpilih = *year
	} else {
		summary.TahunTerpilih = DefaultYear(summary.Tahun, s.now())
	}
	summary.Pertumbuhan = AggregateGrowth(growthRecords, summary.TahunTerpilih, s.policy)
	summary.Grafik = GrowthChart(summary.Pertumbuhan)

	return summary, nil
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return orDefault(*s, def)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
