package receipts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezbooks/ezbooks/constants"
	"github.com/ezbooks/ezbooks/internal/common"
	"github.com/ezbooks/ezbooks/internal/docai"
	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/match"
	"github.com/ezbooks/ezbooks/internal/pipeline"
	"github.com/ezbooks/ezbooks/internal/repository"
)

type memReceipts struct {
	rows map[uuid.UUID]*entity.Receipt
}

func newMemReceipts() *memReceipts {
	return &memReceipts{rows: map[uuid.UUID]*entity.Receipt{}}
}

func (m *memReceipts) GetByID(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r, nil
}

func (m *memReceipts) ListReceipts(context.Context, uuid.UUID, repository.ListReceiptsFilter) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, r := range m.rows {
		out = append(out, r)
	}
	return out, nil
}

func (m *memReceipts) ExistsByHash(_ context.Context, userID uuid.UUID, hash string) (bool, error) {
	for _, r := range m.rows {
		if r.UserID == userID && r.ContentHash == hash {
			return true, nil
		}
	}
	return false, nil
}

func (m *memReceipts) CreateUpload(_ context.Context, req *repository.CreateUploadRequest) (*entity.Receipt, error) {
	r := &entity.Receipt{
		ID:          uuid.New(),
		UserID:      req.UserID,
		Filename:    req.Filename,
		ContentHash: req.ContentHash,
		Status:      string(constants.ReceiptStatusUploaded),
		CreatedAt:   time.Now(),
	}
	m.rows[r.ID] = r
	return r, nil
}

func (m *memReceipts) UpdateParsed(_ context.Context, id uuid.UUID, req *repository.UpdateParsedRequest) (*entity.Receipt, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	r.ImageKey = req.ImageKey
	r.VendorID = req.VendorID
	r.VendorText = req.VendorText
	r.CardID = req.CardID
	r.CardLast4 = req.CardLast4
	r.JobID = req.JobID
	r.Category = req.Category
	r.Amount = req.Amount
	r.TaxAmount = req.TaxAmount
	r.TxDate = req.TxDate
	r.RawText = req.RawText
	r.Status = string(req.Status)
	return r, nil
}

func (m *memReceipts) MarkFailed(_ context.Context, id uuid.UUID) error {
	r, ok := m.rows[id]
	if !ok {
		return common.ErrNotFound
	}
	r.Status = string(constants.ReceiptStatusFailed)
	return nil
}

type memVendors struct {
	rows []*entity.Vendor
}

func (m *memVendors) ListVendors(context.Context, uuid.UUID) ([]*entity.Vendor, error) {
	return m.rows, nil
}

func (m *memVendors) GetByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	for _, v := range m.rows {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memVendors) FindByName(_ context.Context, userID uuid.UUID, name string) (*entity.Vendor, error) {
	for _, v := range m.rows {
		if v.UserID == userID && v.Name == name {
			return v, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memVendors) CreateVendor(_ context.Context, req *repository.CreateVendorRequest) (*entity.Vendor, error) {
	v := &entity.Vendor{
		ID:              uuid.New(),
		UserID:          req.UserID,
		Name:            req.Name,
		DefaultCategory: req.DefaultCategory,
	}
	m.rows = append(m.rows, v)
	return v, nil
}

func (m *memVendors) UpdateVendor(context.Context, uuid.UUID, *repository.CreateVendorRequest) (*entity.Vendor, error) {
	return nil, errors.New("not implemented")
}

type memStore struct {
	objects map[string][]byte
	putErr  error
}

func newMemStore() *memStore { return &memStore{objects: map[string][]byte{}} }

func (m *memStore) Put(_ context.Context, key, _ string, body []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.objects[key] = body
	return nil
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := m.objects[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return b, nil
}

type stubAnalyzer struct{ lines []string }

func (s *stubAnalyzer) DetectText(context.Context, docai.Document) ([]string, error) {
	return s.lines, nil
}

func (s *stubAnalyzer) AnalyzeExpense(context.Context, docai.Document) ([]docai.TypedField, error) {
	return nil, docai.ErrExpenseUnsupported
}

func newTestService(receiptsRepo *memReceipts, vendors *memVendors, store *memStore, lines []string) *Service {
	matcher := match.NewMatcher(vendors, nil, nil)
	pipe := pipeline.New(&stubAnalyzer{lines: lines}, nil, matcher, nil)
	return NewService(receiptsRepo, vendors, store, pipe, nil)
}

func TestUploadEmptyBytes(t *testing.T) {
	svc := newTestService(newMemReceipts(), &memVendors{}, newMemStore(), nil)

	_, err := svc.Upload(context.Background(), &UploadRequest{
		UserID:   uuid.New(),
		Filename: "empty.pdf",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnreadableInput)
}

func TestUploadCreatesVendorAndParses(t *testing.T) {
	receiptsRepo := newMemReceipts()
	vendors := &memVendors{}
	store := newMemStore()
	svc := newTestService(receiptsRepo, vendors, store,
		[]string{"SHOP MART", "TOTAL: $43.22", "04/12/2024"})

	userID := uuid.New()
	rec, err := svc.Upload(context.Background(), &UploadRequest{
		UserID:      userID,
		Filename:    "receipt.jpg",
		ContentType: "image/jpeg",
		Bytes:       []byte("image bytes"),
	})
	require.NoError(t, err)

	// extracted but unmatched vendor is created so the next receipt matches
	require.Len(t, vendors.rows, 1)
	assert.Equal(t, "SHOP MART", vendors.rows[0].Name)
	require.NotNil(t, rec.VendorID)
	assert.Equal(t, vendors.rows[0].ID, *rec.VendorID)

	require.NotNil(t, rec.Amount)
	assert.InDelta(t, 43.22, *rec.Amount, 0.001)
	require.NotNil(t, rec.TxDate)
	assert.Equal(t, "04/12/2024", *rec.TxDate)
	assert.Equal(t, string(constants.ReceiptStatusParsed), rec.Status)

	require.NotNil(t, rec.ImageKey)
	assert.Contains(t, store.objects, *rec.ImageKey)
}

func TestUploadUserOverridesWin(t *testing.T) {
	receiptsRepo := newMemReceipts()
	vendors := &memVendors{}
	svc := newTestService(receiptsRepo, vendors, newMemStore(),
		[]string{"SHOP MART", "TOTAL: $43.22"})

	vendorName := "Joe's Gas Bar"
	amount := 12.00
	rec, err := svc.Upload(context.Background(), &UploadRequest{
		UserID:   uuid.New(),
		Filename: "receipt.jpg",
		Bytes:    []byte("image bytes"),
		Overrides: Overrides{
			Vendor: &vendorName,
			Amount: &amount,
		},
	})
	require.NoError(t, err)

	require.NotNil(t, rec.VendorText)
	assert.Equal(t, "Joe's Gas Bar", *rec.VendorText)
	require.NotNil(t, rec.Amount)
	assert.InDelta(t, 12.00, *rec.Amount, 0.001)

	// the typed name, not the extracted one, becomes the vendor record
	require.Len(t, vendors.rows, 1)
	assert.Equal(t, "Joe's Gas Bar", vendors.rows[0].Name)
}

func TestUploadUnresolvedCardGoesToReview(t *testing.T) {
	svc := newTestService(newMemReceipts(), &memVendors{}, newMemStore(),
		[]string{"SHOP MART", "TOTAL: $43.22", "**** 9999"})

	rec, err := svc.Upload(context.Background(), &UploadRequest{
		UserID:   uuid.New(),
		Filename: "receipt.jpg",
		Bytes:    []byte("image bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.ReceiptStatusReview), rec.Status)
}

func TestUploadStoreFailureStillParses(t *testing.T) {
	store := newMemStore()
	store.putErr = errors.New("bucket unavailable")
	svc := newTestService(newMemReceipts(), &memVendors{}, store,
		[]string{"SHOP MART", "TOTAL: $43.22"})

	rec, err := svc.Upload(context.Background(), &UploadRequest{
		UserID:   uuid.New(),
		Filename: "receipt.jpg",
		Bytes:    []byte("image bytes"),
	})
	require.NoError(t, err)
	assert.Nil(t, rec.ImageKey)
	require.NotNil(t, rec.Amount)
	assert.InDelta(t, 43.22, *rec.Amount, 0.001)
}
