package services

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Anggota"

// Export menulis daftar anggota (setelah filter pencarian) sebagai workbook XLSX
func (s *MemberService) Export(ctx context.Context, search string, w io.Writer) error {
	guardians, err := s.List(ctx, search)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{"ID", "Nama", "NIK", "Alamat", "Usia", "Jenis Kelamin", "Nomor Telepon", "Foto"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, g := range guardians {
		foto := ""
		if g.Foto != nil {
			foto = *g.Foto
		}
		row := []interface{}{g.ID, g.Nama, g.NIK, g.Alamat, g.Usia, g.JenisKelamin, g.NomorTelepon, foto}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
