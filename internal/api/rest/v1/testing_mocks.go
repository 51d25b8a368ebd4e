//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"
	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"
	"github.com/SharpenYourSword/courtlistener/internal/domain/search"

	"github.com/stretchr/testify/mock"
)

// MockCourtService is a mock implementation of CourtService
type MockCourtService struct {
	mock.Mock
}

func (m *MockCourtService) List(ctx context.Context, query *courts.CourtQuery) ([]*courts.Court, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*courts.Court), args.Get(1).(int64), args.Error(2)
}

func (m *MockCourtService) GetByID(ctx context.Context, courtID string) (*courts.Court, error) {
	args := m.Called(ctx, courtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courts.Court), args.Error(1)
}

func (m *MockCourtService) Create(ctx context.Context, court *courts.Court) error {
	args := m.Called(ctx, court)
	return args.Error(0)
}

func (m *MockCourtService) UpdateByID(ctx context.Context, court *courts.Court) error {
	args := m.Called(ctx, court)
	return args.Error(0)
}

func (m *MockCourtService) DeleteByID(ctx context.Context, courtID string) error {
	args := m.Called(ctx, courtID)
	return args.Error(0)
}

// MockOriginatingCourtInfoService is a mock implementation of OriginatingCourtInfoService
type MockOriginatingCourtInfoService struct {
	mock.Mock
}

func (m *MockOriginatingCourtInfoService) List(ctx context.Context, query *courts.OriginatingCourtInfoQuery) ([]*courts.OriginatingCourtInfo, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*courts.OriginatingCourtInfo), args.Get(1).(int64), args.Error(2)
}

func (m *MockOriginatingCourtInfoService) GetByID(ctx context.Context, id string) (*courts.OriginatingCourtInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courts.OriginatingCourtInfo), args.Error(1)
}

func (m *MockOriginatingCourtInfoService) Create(ctx context.Context, info *courts.OriginatingCourtInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockOriginatingCourtInfoService) UpdateByID(ctx context.Context, info *courts.OriginatingCourtInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockOriginatingCourtInfoService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDocketService is a mock implementation of DocketService
type MockDocketService struct {
	mock.Mock
}

func (m *MockDocketService) List(ctx context.Context, query *dockets.DocketQuery) ([]*dockets.Docket, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*dockets.Docket), args.Get(1).(int64), args.Error(2)
}

func (m *MockDocketService) GetByID(ctx context.Context, docketID string) (*dockets.Docket, error) {
	args := m.Called(ctx, docketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dockets.Docket), args.Error(1)
}

func (m *MockDocketService) Create(ctx context.Context, docket *dockets.Docket) error {
	args := m.Called(ctx, docket)
	return args.Error(0)
}

func (m *MockDocketService) UpdateByID(ctx context.Context, docket *dockets.Docket) error {
	args := m.Called(ctx, docket)
	return args.Error(0)
}

func (m *MockDocketService) DeleteByID(ctx context.Context, docketID string) error {
	args := m.Called(ctx, docketID)
	return args.Error(0)
}

// MockDocketEntryService is a mock implementation of DocketEntryService
type MockDocketEntryService struct {
	mock.Mock
}

func (m *MockDocketEntryService) List(ctx context.Context, query *dockets.DocketEntryQuery) ([]*dockets.DocketEntry, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*dockets.DocketEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockDocketEntryService) GetByID(ctx context.Context, entryID string) (*dockets.DocketEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dockets.DocketEntry), args.Error(1)
}

func (m *MockDocketEntryService) Create(ctx context.Context, entry *dockets.DocketEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDocketEntryService) UpdateByID(ctx context.Context, entry *dockets.DocketEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDocketEntryService) DeleteByID(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// MockCaseDocumentService is a mock implementation of CaseDocumentService
type MockCaseDocumentService struct {
	mock.Mock
}

func (m *MockCaseDocumentService) List(ctx context.Context, query *dockets.CaseDocumentQuery) ([]*dockets.CaseDocument, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*dockets.CaseDocument), args.Get(1).(int64), args.Error(2)
}

func (m *MockCaseDocumentService) GetByID(ctx context.Context, documentID string) (*dockets.CaseDocument, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dockets.CaseDocument), args.Error(1)
}

func (m *MockCaseDocumentService) Create(ctx context.Context, document *dockets.CaseDocument) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockCaseDocumentService) UpdateByID(ctx context.Context, document *dockets.CaseDocument) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockCaseDocumentService) DeleteByID(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

// MockTagService is a mock implementation of TagService
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) List(ctx context.Context, query *dockets.TagQuery) ([]*dockets.Tag, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*dockets.Tag), args.Get(1).(int64), args.Error(2)
}

func (m *MockTagService) GetByID(ctx context.Context, tagID string) (*dockets.Tag, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dockets.Tag), args.Error(1)
}

func (m *MockTagService) Create(ctx context.Context, tag *dockets.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagService) UpdateByID(ctx context.Context, tag *dockets.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagService) DeleteByID(ctx context.Context, tagID string) error {
	args := m.Called(ctx, tagID)
	return args.Error(0)
}

// MockOpinionClusterService is a mock implementation of OpinionClusterService
type MockOpinionClusterService struct {
	mock.Mock
}

func (m *MockOpinionClusterService) List(ctx context.Context, query *opinions.OpinionClusterQuery) ([]*opinions.OpinionCluster, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*opinions.OpinionCluster), args.Get(1).(int64), args.Error(2)
}

func (m *MockOpinionClusterService) GetByID(ctx context.Context, clusterID string) (*opinions.OpinionCluster, error) {
	args := m.Called(ctx, clusterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opinions.OpinionCluster), args.Error(1)
}

func (m *MockOpinionClusterService) Create(ctx context.Context, cluster *opinions.OpinionCluster) error {
	args := m.Called(ctx, cluster)
	return args.Error(0)
}

func (m *MockOpinionClusterService) UpdateByID(ctx context.Context, cluster *opinions.OpinionCluster) error {
	args := m.Called(ctx, cluster)
	return args.Error(0)
}

func (m *MockOpinionClusterService) DeleteByID(ctx context.Context, clusterID string) error {
	args := m.Called(ctx, clusterID)
	return args.Error(0)
}

// MockOpinionService is a mock implementation of OpinionService
type MockOpinionService struct {
	mock.Mock
}

func (m *MockOpinionService) List(ctx context.Context, query *opinions.OpinionQuery) ([]*opinions.Opinion, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*opinions.Opinion), args.Get(1).(int64), args.Error(2)
}

func (m *MockOpinionService) GetByID(ctx context.Context, opinionID string) (*opinions.Opinion, error) {
	args := m.Called(ctx, opinionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opinions.Opinion), args.Error(1)
}

func (m *MockOpinionService) Create(ctx context.Context, opinion *opinions.Opinion) error {
	args := m.Called(ctx, opinion)
	return args.Error(0)
}

func (m *MockOpinionService) UpdateByID(ctx context.Context, opinion *opinions.Opinion) error {
	args := m.Called(ctx, opinion)
	return args.Error(0)
}

func (m *MockOpinionService) DeleteByID(ctx context.Context, opinionID string) error {
	args := m.Called(ctx, opinionID)
	return args.Error(0)
}

// MockCitationService is a mock implementation of CitationService
type MockCitationService struct {
	mock.Mock
}

func (m *MockCitationService) List(ctx context.Context, query *opinions.CitationQuery) ([]*opinions.Citation, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*opinions.Citation), args.Get(1).(int64), args.Error(2)
}

func (m *MockCitationService) GetByID(ctx context.Context, citationID string) (*opinions.Citation, error) {
	args := m.Called(ctx, citationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opinions.Citation), args.Error(1)
}

func (m *MockCitationService) Create(ctx context.Context, citation *opinions.Citation) error {
	args := m.Called(ctx, citation)
	return args.Error(0)
}

func (m *MockCitationService) UpdateByID(ctx context.Context, citation *opinions.Citation) error {
	args := m.Called(ctx, citation)
	return args.Error(0)
}

func (m *MockCitationService) DeleteByID(ctx context.Context, citationID string) error {
	args := m.Called(ctx, citationID)
	return args.Error(0)
}

// MockSearchService is a mock implementation of SearchService
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, query *search.Query) ([]*search.Result, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*search.Result), args.Get(1).(int64), args.Error(2)
}
