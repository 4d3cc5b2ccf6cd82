package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ezbooks/ezbooks/internal/common"
	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/repository"
)

type fakeReceipts struct {
	rows       []*entity.Receipt
	lastFilter repository.ListReceiptsFilter
}

func (f *fakeReceipts) GetByID(context.Context, uuid.UUID) (*entity.Receipt, error) {
	return nil, common.ErrNotFound
}

func (f *fakeReceipts) ListReceipts(_ context.Context, _ uuid.UUID, filter repository.ListReceiptsFilter) ([]*entity.Receipt, error) {
	f.lastFilter = filter
	return f.rows, nil
}

func (f *fakeReceipts) ExistsByHash(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}

func (f *fakeReceipts) CreateUpload(context.Context, *repository.CreateUploadRequest) (*entity.Receipt, error) {
	return nil, common.ErrNotFound
}

func (f *fakeReceipts) UpdateParsed(context.Context, uuid.UUID, *repository.UpdateParsedRequest) (*entity.Receipt, error) {
	return nil, common.ErrNotFound
}

func (f *fakeReceipts) MarkFailed(context.Context, uuid.UUID) error { return nil }

type fakeVendors struct {
	byID map[uuid.UUID]*entity.Vendor
}

func (f *fakeVendors) ListVendors(context.Context, uuid.UUID) ([]*entity.Vendor, error) {
	return nil, nil
}

func (f *fakeVendors) GetByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	if v, ok := f.byID[id]; ok {
		return v, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeVendors) FindByName(context.Context, uuid.UUID, string) (*entity.Vendor, error) {
	return nil, common.ErrNotFound
}

func (f *fakeVendors) CreateVendor(context.Context, *repository.CreateVendorRequest) (*entity.Vendor, error) {
	return nil, common.ErrNotFound
}

func (f *fakeVendors) UpdateVendor(context.Context, uuid.UUID, *repository.CreateVendorRequest) (*entity.Vendor, error) {
	return nil, common.ErrNotFound
}

type fakeJobs struct {
	byID map[uuid.UUID]*entity.Job
}

func (f *fakeJobs) ListJobs(context.Context, uuid.UUID, string) ([]*entity.Job, error) {
	return nil, nil
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	if j, ok := f.byID[id]; ok {
		return j, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeJobs) CreateJob(context.Context, *repository.CreateJobRequest) (*entity.Job, error) {
	return nil, common.ErrNotFound
}

func (f *fakeJobs) SetStatus(context.Context, uuid.UUID, string) (*entity.Job, error) {
	return nil, common.ErrNotFound
}

func str(s string) *string { return &s }

func num(f float64) *float64 { return &f }

func testFixture() (*fakeReceipts, *fakeVendors, *fakeJobs) {
	vendorID := uuid.New()
	jobID := uuid.New()
	receipts := &fakeReceipts{rows: []*entity.Receipt{
		{
			ID:        uuid.New(),
			Filename:  "shopmart.jpg",
			VendorID:  &vendorID,
			JobID:     &jobID,
			Category:  str("Materials"),
			Amount:    num(43.2),
			TaxAmount: num(3.23),
			TxDate:    str("2024-04-12"),
			CardLast4: str("1234"),
			Status:    "PARSED",
		},
		{
			ID:         uuid.New(),
			Filename:   "gas.jpg",
			VendorText: str("Joe's Gas Bar"),
			Status:     "REVIEW",
		},
	}}
	vendors := &fakeVendors{byID: map[uuid.UUID]*entity.Vendor{
		vendorID: {ID: vendorID, Name: "Shop Mart"},
	}}
	jobs := &fakeJobs{byID: map[uuid.UUID]*entity.Job{
		jobID: {ID: jobID, Name: "Smith kitchen"},
	}}
	return receipts, vendors, jobs
}

func TestExportCSV(t *testing.T) {
	receipts, vendors, jobs := testFixture()
	svc := NewService(receipts, vendors, jobs, nil)

	out, err := svc.ExportCSV(context.Background(), Request{UserID: uuid.New()})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, []string{"2024-04-12", "Shop Mart", "Materials", "Smith kitchen", "43.20", "3.23", "1234", "PARSED", "shopmart.jpg"}, rows[1])
	// no vendor record: the extracted text stands in, absent fields stay blank
	assert.Equal(t, []string{"", "Joe's Gas Bar", "", "", "", "", "", "REVIEW", "gas.jpg"}, rows[2])
}

func TestExportCSVWindowDefaultsToToday(t *testing.T) {
	receipts, vendors, jobs := testFixture()
	svc := NewService(receipts, vendors, jobs, nil)

	from := time.Date(2024, 4, 1, 15, 30, 0, 0, time.UTC)
	_, err := svc.ExportCSV(context.Background(), Request{UserID: uuid.New(), From: &from})
	require.NoError(t, err)

	require.NotNil(t, receipts.lastFilter.FromDate)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), *receipts.lastFilter.FromDate)
	require.NotNil(t, receipts.lastFilter.ToDate, "open-ended from should close at today")
	assert.Equal(t, 0, receipts.lastFilter.ToDate.Hour())
}

func TestExportXLSX(t *testing.T) {
	receipts, vendors, jobs := testFixture()
	svc := NewService(receipts, vendors, jobs, nil)

	out, err := svc.ExportXLSX(context.Background(), Request{UserID: uuid.New()})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Receipts")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "Shop Mart", rows[1][1])
	assert.Equal(t, "43.20", rows[1][4])
	assert.Equal(t, "Joe's Gas Bar", rows[2][1])
}
