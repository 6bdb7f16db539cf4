package usecase

import (
	"testing"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// stubPatientDirectory serves a fixed set of directory rows.
type stubPatientDirectory struct {
	byID     map[uuid.UUID]*entity.Patient
	byLookup map[string]*entity.Patient
}

func (s *stubPatientDirectory) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return s.byID[id], nil
}

func (s *stubPatientDirectory) Resolve(_ *gorm.DB, lookup string) (*entity.Patient, error) {
	return s.byLookup[lookup], nil
}

func (s *stubPatientDirectory) ShortIDs(_ *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string)
	for _, id := range ids {
		if p, ok := s.byID[id]; ok {
			out[id] = p.ShortID
		}
	}
	return out, nil
}

func TestResolvePatient(t *testing.T) {
	fullID := uuid.New()
	fullPhone := "0791112222"
	noPhoneID := uuid.New()
	noNameID := uuid.New()

	dir := &stubPatientDirectory{
		byID: map[uuid.UUID]*entity.Patient{
			fullID:    {ID: fullID, ShortID: "PT-0001", FullName: "Ahmad Khalil", Phone: &fullPhone},
			noPhoneID: {ID: noPhoneID, ShortID: "PT-0002", FullName: "Sara Haddad"},
			noNameID:  {ID: noNameID, ShortID: "PT-0003"},
		},
		byLookup: map[string]*entity.Patient{},
	}
	dir.byLookup["pt-0001"] = dir.byID[fullID]
	u := &appointmentUsecase{patients: dir}

	tests := []struct {
		name      string
		req       dto.CreateAppointmentRequest
		wantID    *uuid.UUID
		wantName  string
		wantPhone string // "" means nil
	}{
		{
			name:      "resolved row wins over submitted fields",
			req:       dto.CreateAppointmentRequest{PatientID: fullID.String(), PatientName: "Typed Name", PatientPhone: "0790000000"},
			wantID:    &fullID,
			wantName:  "Ahmad Khalil",
			wantPhone: fullPhone,
		},
		{
			name:      "submitted phone survives a directory row without one",
			req:       dto.CreateAppointmentRequest{PatientID: noPhoneID.String(), PatientPhone: "0793334444"},
			wantID:    &noPhoneID,
			wantName:  "Sara Haddad",
			wantPhone: "0793334444",
		},
		{
			name:      "submitted name survives a directory row without one",
			req:       dto.CreateAppointmentRequest{PatientID: noNameID.String(), PatientName: "Typed Name"},
			wantID:    &noNameID,
			wantName:  "Typed Name",
			wantPhone: "",
		},
		{
			name:     "lookup resolution after id miss",
			req:      dto.CreateAppointmentRequest{PatientLookup: "pt-0001"},
			wantID:   &fullID,
			wantName: "Ahmad Khalil", wantPhone: fullPhone,
		},
		{
			name:     "unresolved falls back to display placeholder",
			req:      dto.CreateAppointmentRequest{},
			wantID:   nil,
			wantName: "—",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, name, phone, err := u.resolvePatient(nil, &tc.req)
			if err != nil {
				t.Fatalf("resolvePatient returned error: %v", err)
			}
			if (id == nil) != (tc.wantID == nil) || (id != nil && *id != *tc.wantID) {
				t.Errorf("patient id = %v, want %v", id, tc.wantID)
			}
			if name != tc.wantName {
				t.Errorf("name = %q, want %q", name, tc.wantName)
			}
			gotPhone := ""
			if phone != nil {
				gotPhone = *phone
			}
			if gotPhone != tc.wantPhone {
				t.Errorf("phone = %q, want %q", gotPhone, tc.wantPhone)
			}
		})
	}
}
