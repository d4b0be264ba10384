package repository

import (
	"context"
	"testing"
	"time"

	"posyandu-backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockStore(t *testing.T) (sqlmock.Sqlmock, *Store) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return mock, New(db)
}

func TestGetGuardian_Success(t *testing.T) {
	mock, store := setupMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "nama", "nik", "foto", "alamat", "usia", "jenis_kelamin", "nomor_telepon", "admin_id"}).
		AddRow(7, "Siti", "3201234567890123", "https://cdn/profile-ortu/abc", "Jl. Melati", 31, "Perempuan", "081234567890", 2)
	mock.ExpectQuery("SELECT \\* FROM `orangtua` WHERE id = \\?").WillReturnRows(rows)

	g, err := store.GetGuardian(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), g.ID)
	assert.Equal(t, "Siti", g.Nama)
	require.NotNil(t, g.Foto)
	assert.Equal(t, "https://cdn/profile-ortu/abc", *g.Foto)
	assert.Equal(t, uint64(2), g.AdminID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGuardian_NotFound(t *testing.T) {
	mock, store := setupMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `orangtua` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.GetGuardian(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuardian(t *testing.T) {
	mock, store := setupMockStore(t)

	mock.ExpectExec("DELETE FROM `orangtua` WHERE id = \\?").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.DeleteGuardian(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteChild(t *testing.T) {
	mock, store := setupMockStore(t)

	mock.ExpectExec("DELETE FROM `anak` WHERE id = \\?").
		WithArgs(11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.DeleteChild(context.Background(), 11))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGuardian_NullPhoto(t *testing.T) {
	mock, store := setupMockStore(t)

	mock.ExpectExec("UPDATE `orangtua` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpdateGuardian(context.Background(), 7, models.GuardianUpdate{
		Nama:         "Siti",
		NIK:          "3201234567890123",
		Alamat:       "Jl. Melati",
		Usia:         31,
		JenisKelamin: "Perempuan",
		NomorTelepon: "081234567890",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountGuardiansByAdmin(t *testing.T) {
	mock, store := setupMockStore(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `orangtua` WHERE admin_id = \\?").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(5))

	n, err := store.CountGuardiansByAdmin(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChildrenByGuardian(t *testing.T) {
	mock, store := setupMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "nama", "foto", "id_orangtua", "admin_id"}).
		AddRow(11, "Budi", "https://cdn/profile-anak/b1", 7, 2).
		AddRow(12, "Ani", nil, 7, 2)
	mock.ExpectQuery("SELECT \\* FROM `anak` WHERE id_orangtua = \\?").
		WithArgs(7).
		WillReturnRows(rows)

	children, err := store.ChildrenByGuardian(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, uint64(7), children[0].GuardianID)
	require.NotNil(t, children[0].Foto)
	assert.Nil(t, children[1].Foto)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivitiesByChildren_NewestFirst(t *testing.T) {
	mock, store := setupMockStore(t)

	newer := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	older := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "id_anak", "aktivitas_imunisasi", "status_imunisasi", "dibuat_pada"}).
		AddRow(2, 12, nil, nil, newer).
		AddRow(1, 11, "Polio", "Selesai", older)
	mock.ExpectQuery("SELECT `id`,`id_anak`,`aktivitas_imunisasi`,`status_imunisasi`,`dibuat_pada` FROM `rekam_medis_posyandu` " +
		"WHERE id_anak IN \\(\\?,\\?\\) ORDER BY dibuat_pada desc").
		WithArgs(11, 12).
		WillReturnRows(rows)

	records, err := store.ActivitiesByChildren(context.Background(), []uint64{11, 12})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer, records[0].DibuatPada)
	assert.Nil(t, records[0].AktivitasImunisasi)
	require.NotNil(t, records[1].StatusImunisasi)
	assert.Equal(t, "Selesai", *records[1].StatusImunisasi)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivitiesByChildren_NoChildren(t *testing.T) {
	mock, store := setupMockStore(t)

	records, err := store.ActivitiesByChildren(context.Background(), []uint64{})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrowthByChildren(t *testing.T) {
	mock, store := setupMockStore(t)

	visit := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"tanggal_kunjungan", "tinggi_badan", "berat_badan"}).
		AddRow(visit, 80.5, 10.2).
		AddRow(visit, nil, 9.8)
	mock.ExpectQuery("SELECT .+ FROM `rekam_medis_posyandu` WHERE id_anak IN \\(\\?,\\?\\)").
		WithArgs(11, 12).
		WillReturnRows(rows)

	records, err := store.GrowthByChildren(context.Background(), []uint64{11, 12})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2024, records[0].TanggalKunjungan.Year())
	require.NotNil(t, records[0].TinggiBadan)
	assert.InDelta(t, 80.5, *records[0].TinggiBadan, 1e-9)
	assert.Nil(t, records[1].TinggiBadan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrowthByChildren_NoChildren(t *testing.T) {
	mock, store := setupMockStore(t)

	records, err := store.GrowthByChildren(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminByEmail_NotFound(t *testing.T) {
	mock, store := setupMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `admin` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.AdminByEmail(context.Background(), "x@y.id")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
