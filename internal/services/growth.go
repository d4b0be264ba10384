package services

import (
	"sort"
	"time"

	"posyandu-backend/internal/models"
)

// MissingPolicy menentukan perlakuan pengukuran yang NULL saat dirata-rata
type MissingPolicy int

const (
	// MissingAsZero: NULL dihitung 0 dan tetap masuk pembagi (perilaku lama dashboard)
	MissingAsZero MissingPolicy = iota
	// SkipMissing: NULL dikeluarkan dari jumlah dan pembagi kolom tsb
	SkipMissing
)

func ParseMissingPolicy(s string) MissingPolicy {
	if s == "skip" {
		return SkipMissing
	}
	return MissingAsZero
}

var bulanIndonesia = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthlyGrowth adalah rata-rata tinggi & berat anak dalam satu bulan
type MonthlyGrowth struct {
	Month       string  `json:"month"` // "01".."12"
	Label       string  `json:"label"`
	TinggiBadan float64 `json:"tinggi_badan"`
	BeratBadan  float64 `json:"berat_badan"`
}

type monthAcc struct {
	tinggi, berat           float64
	count                   int
	tinggiCount, beratCount int
}

// AggregateGrowth mengelompokkan kunjungan tahun `year` per bulan lalu merata-rata
// tinggi dan berat. Bulan tanpa kunjungan tidak muncul. Hasil urut bulan naik.
func AggregateGrowth(records []models.VisitRecord, year int, policy MissingPolicy) []MonthlyGrowth {
	groups := make(map[string]*monthAcc)
	for _, r := range records {
		if r.TanggalKunjungan.Year() != year {
			continue
		}
		key := r.TanggalKunjungan.Format("01")
		acc, ok := groups[key]
		if !ok {
			acc = &monthAcc{}
			groups[key] = acc
		}
		acc.count++
		if r.TinggiBadan != nil {
			acc.tinggi += *r.TinggiBadan
			acc.tinggiCount++
		}
		if r.BeratBadan != nil {
			acc.berat += *r.BeratBadan
			acc.beratCount++
		}
	}

	months := make([]string, 0, len(groups))
	for m := range groups {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]MonthlyGrowth, 0, len(months))
	for _, m := range months {
		acc := groups[m]
		tDiv, bDiv := acc.count, acc.count
		if policy == SkipMissing {
			tDiv, bDiv = acc.tinggiCount, acc.beratCount
		}
		out = append(out, MonthlyGrowth{
			Month:       m,
			Label:       monthLabel(m),
			TinggiBadan: mean(acc.tinggi, tDiv),
			BeratBadan:  mean(acc.berat, bDiv),
		})
	}
	return out
}

// VisitYears mengembalikan tahun-tahun kunjungan yang berbeda, urut kemunculan pertama
func VisitYears(records []models.VisitRecord) []int {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, r := range records {
		y := r.TanggalKunjungan.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	return years
}

// DefaultYear = tahun pertama yang ditemui, bukan tahun terkecil.
// Kalau belum ada data sama sekali, pakai tahun berjalan.
func DefaultYear(years []int, now time.Time) int {
	if len(years) > 0 {
		return years[0]
	}
	return now.Year()
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func monthLabel(key string) string {
	t, err := time.Parse("01", key)
	if err != nil {
		return key
	}
	return bulanIndonesia[t.Month()-1]
}

// ChartDataset satu garis pada grafik pertumbuhan
type ChartDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// GrowthChart menyusun payload grafik garis dari hasil agregasi
func GrowthChart(growth []MonthlyGrowth) ChartData {
	labels := make([]string, 0, len(growth))
	tinggi := make([]float64, 0, len(growth))
	berat := make([]float64, 0, len(growth))
	for _, g := range growth {
		labels = append(labels, g.Label)
		tinggi = append(tinggi, g.TinggiBadan)
		berat = append(berat, g.BeratBadan)
	}
	return ChartData{
		Labels: labels,
		Datasets: []ChartDataset{
			{Label: "Rata-rata Tinggi Badan (cm)", Data: tinggi},
			{Label: "Rata-rata Berat Badan (kg)", Data: berat},
		},
	}
}
