package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"
	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse carries a single error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a single informational message
type InfoResponse struct {
	Message string `json:"message"`
}

// PaginatedResponse is the envelope returned by every list endpoint
type PaginatedResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// validateRequest runs struct-tag validation on a request DTO
func validateRequest(request interface{}) error {
	validate := validator.New()

	err := validate.Struct(request)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// CourtRequest is the write body for courts. Courts are keyed by slug, so
// creates carry the ID.
type CourtRequest struct {
	ID             string     `json:"id" validate:"required,min=2,max=15"`
	FullName       string     `json:"full_name" validate:"required,min=1,max=200"`
	ShortName      string     `json:"short_name" validate:"required,min=1,max=100"`
	CitationString string     `json:"citation_string" validate:"max=100"`
	Jurisdiction   string     `json:"jurisdiction" validate:"required,oneof=F FD FS S SA ST T"`
	Position       float64    `json:"position" validate:"gte=0"`
	URL            string     `json:"url" validate:"omitempty,url"`
	InUse          bool       `json:"in_use"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
}

// Validate for validating CourtRequest struct
func (r *CourtRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain builds the domain entity for the request
func (r *CourtRequest) ToDomain() *courts.Court {
	return &courts.Court{
		ID:             r.ID,
		FullName:       r.FullName,
		ShortName:      r.ShortName,
		CitationString: r.CitationString,
		Jurisdiction:   r.Jurisdiction,
		Position:       r.Position,
		URL:            r.URL,
		InUse:          r.InUse,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}
}

// CourtResponse is the serialized court resource
type CourtResponse struct {
	ID             string     `json:"id"`
	FullName       string     `json:"full_name"`
	ShortName      string     `json:"short_name"`
	CitationString string     `json:"citation_string"`
	Jurisdiction   string     `json:"jurisdiction"`
	Position       float64    `json:"position"`
	URL            string     `json:"url"`
	InUse          bool       `json:"in_use"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	DateModified   time.Time  `json:"date_modified"`
}

// NewCourtResponse maps a court entity onto its response DTO
func NewCourtResponse(c *courts.Court) CourtResponse {
	return CourtResponse{
		ID:             c.ID,
		FullName:       c.FullName,
		ShortName:      c.ShortName,
		CitationString: c.CitationString,
		Jurisdiction:   c.Jurisdiction,
		Position:       c.Position,
		URL:            c.URL,
		InUse:          c.InUse,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		DateModified:   c.DateModified,
	}
}

// OriginatingCourtInfoRequest is the write body for originating court info
type OriginatingCourtInfoRequest struct {
	DocketNumber     string     `json:"docket_number" validate:"max=100"`
	AssignedToStr    string     `json:"assigned_to_str" validate:"max=200"`
	OrderingJudgeStr string     `json:"ordering_judge_str" validate:"max=200"`
	CourtReporter    string     `json:"court_reporter" validate:"max=200"`
	DateDisposed     *time.Time `json:"date_disposed"`
	DateFiled        *time.Time `json:"date_filed"`
	DateJudgment     *time.Time `json:"date_judgment"`
	DateReceived     *time.Time `json:"date_received"`
}

// Validate for validating OriginatingCourtInfoRequest struct
func (r *OriginatingCourtInfoRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain builds the domain entity for the request
func (r *OriginatingCourtInfoRequest) ToDomain() *courts.OriginatingCourtInfo {
	return &courts.OriginatingCourtInfo{
		DocketNumber:     r.DocketNumber,
		AssignedToStr:    r.AssignedToStr,
		OrderingJudgeStr: r.OrderingJudgeStr,
		CourtReporter:    r.CourtReporter,
		DateDisposed:     r.DateDisposed,
		DateFiled:        r.DateFiled,
		DateJudgment:     r.DateJudgment,
		DateReceived:     r.DateReceived,
	}
}

// OriginatingCourtInfoResponse is the serialized originating court info
// resource
type OriginatingCourtInfoResponse struct {
	ID               string     `json:"id"`
	DocketNumber     string     `json:"docket_number"`
	AssignedToStr    string     `json:"assigned_to_str"`
	OrderingJudgeStr string     `json:"ordering_judge_str"`
	CourtReporter    string     `json:"court_reporter"`
	DateDisposed     *time.Time `json:"date_disposed"`
	DateFiled        *time.Time `json:"date_filed"`
	DateJudgment     *time.Time `json:"date_judgment"`
	DateReceived     *time.Time `json:"date_received"`
	DateCreated      time.Time  `json:"date_created"`
	DateModified     time.Time  `json:"date_modified"`
}

// NewOriginatingCourtInfoResponse maps an originating court info entity onto
// its response DTO
func NewOriginatingCourtInfoResponse(o *courts.OriginatingCourtInfo) OriginatingCourtInfoResponse {
	return OriginatingCourtInfoResponse{
		ID:               o.ID,
		DocketNumber:     o.DocketNumber,
		AssignedToStr:    o.AssignedToStr,
		OrderingJudgeStr: o.OrderingJudgeStr,
		CourtReporter:    o.CourtReporter,
		DateDisposed:     o.DateDisposed,
		DateFiled:        o.DateFiled,
		DateJudgment:     o.DateJudgment,
		DateReceived:     o.DateReceived,
		DateCreated:      o.DateCreated,
		DateModified:     o.DateModified,
	}
}

// DocketRequest is the write body for dockets
type DocketRequest struct {
	CourtID                string     `json:"court_id" validate:"required,min=2,max=15"`
	OriginatingCourtInfoID *string    `json:"originating_court_info_id" validate:"omitempty,uuid4"`
	CaseName               string     `json:"case_name" validate:"required,min=1,max=500"`
	CaseNameShort          string     `json:"case_name_short" validate:"max=200"`
	DocketNumber           string     `json:"docket_number" validate:"max=100"`
	AssignedToStr          string     `json:"assigned_to_str" validate:"max=200"`
	ReferredToStr          string     `json:"referred_to_str" validate:"max=200"`
	Source                 string     `json:"source" validate:"max=50"`
	Blocked                bool       `json:"blocked"`
	DateFiled              *time.Time `json:"date_filed"`
	DateArgued             *time.Time `json:"date_argued"`
	DateTerminated         *time.Time `json:"date_terminated"`
	DateLastFiling         *time.Time `json:"date_last_filing"`
	DateBlocked            *time.Time `json:"date_blocked"`
}

// Validate for validating DocketRequest struct
func (r *DocketRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain builds the domain entity for the request
func (r *DocketRequest) ToDomain() *dockets.Docket {
	return &dockets.Docket{
		CourtID:                r.CourtID,
		OriginatingCourtInfoID: r.OriginatingCourtInfoID,
		CaseName:               r.CaseName,
		CaseNameShort:          r.CaseNameShort,
		DocketNumber:           r.DocketNumber,
		AssignedToStr:          r.AssignedToStr,
		ReferredToStr:          r.ReferredToStr,
		Source:                 r.Source,
		Blocked:                r.Blocked,
		DateFiled:              r.DateFiled,
		DateArgued:             r.DateArgued,
		DateTerminated:         r.DateTerminated,
		DateLastFiling:         r.DateLastFiling,
		DateBlocked:            r.DateBlocked,
	}
}

// DocketResponse is the serialized docket resource with its eager-loaded
// relations
type DocketResponse struct {
	ID                     string                        `json:"id"`
	CourtID                string                        `json:"court_id"`
	Court                  *CourtResponse                `json:"court,omitempty"`
	OriginatingCourtInfoID *string                       `json:"originating_court_info_id"`
	OriginatingCourtInfo   *OriginatingCourtInfoResponse `json:"originating_court_info,omitempty"`
	CaseName               string                        `json:"case_name"`
	CaseNameShort          string                        `json:"case_name_short"`
	DocketNumber           string                        `json:"docket_number"`
	AssignedToStr          string                        `json:"assigned_to_str"`
	ReferredToStr          string                        `json:"referred_to_str"`
	Source                 string                        `json:"source"`
	Blocked                bool                          `json:"blocked"`
	DateFiled              *time.Time                    `json:"date_filed"`
	DateArgued             *time.Time                    `json:"date_argued"`
	DateTerminated         *time.Time                    `json:"date_terminated"`
	DateLastFiling         *time.Time                    `json:"date_last_filing"`
	DateBlocked            *time.Time                    `json:"date_blocked"`
	DateCreated            time.Time                     `json:"date_created"`
	DateModified           time.Time                     `json:"date_modified"`
	Clusters               []OpinionClusterResponse      `json:"clusters"`
	Tags                   []TagResponse                 `json:"tags"`
}

// NewDocketResponse maps a docket entity onto its response DTO
func NewDocketResponse(d *dockets.Docket) DocketResponse {
	response := DocketResponse{
		ID:                     d.ID,
		CourtID:                d.CourtID,
		OriginatingCourtInfoID: d.OriginatingCourtInfoID,
		CaseName:               d.CaseName,
		CaseNameShort:          d.CaseNameShort,
		DocketNumber:           d.DocketNumber,
		AssignedToStr:          d.AssignedToStr,
		ReferredToStr:          d.ReferredToStr,
		Source:                 d.Source,
		Blocked:                d.Blocked,
		DateFiled:              d.DateFiled,
		DateArgued:             d.DateArgued,
		DateTerminated:         d.DateTerminated,
		DateLastFiling:         d.DateLastFiling,
		DateBlocked:            d.DateBlocked,
		DateCreated:            d.DateCreated,
		DateModified:           d.DateModified,
		Clusters:               []OpinionClusterResponse{},
		Tags:                   []TagResponse{},
	}

	if d.Court != nil {
		courtResponse := NewCourtResponse(d.Court)
		response.Court = &courtResponse
	}
	if d.OriginatingCourtInfo != nil {
		infoResponse := NewOriginatingCourtInfoResponse(d.OriginatingCourtInfo)
		response.OriginatingCourtInfo = &infoResponse
	}
	for _, cluster := range d.Clusters {
		response.Clusters = append(response.Clusters, NewOpinionClusterResponse(cluster))
	}
	for _, tag := range d.Tags {
		response.Tags = append(response.Tags, NewTagResponse(tag))
	}

	return response
}

// DocketEntryResponse is the serialized docket entry resource
type DocketEntryResponse struct {
	ID           string                 `json:"id"`
	DocketID     string                 `json:"docket_id"`
	Docket       *DocketResponse        `json:"docket,omitempty"`
	EntryNumber  int64                  `json:"entry_number"`
	Description  string                 `json:"description"`
	DateFiled    *time.Time             `json:"date_filed"`
	DateCreated  time.Time              `json:"date_created"`
	DateModified time.Time              `json:"date_modified"`
	Documents    []CaseDocumentResponse `json:"documents"`
	Tags         []TagResponse          `json:"tags"`
}

// NewDocketEntryResponse maps a docket entry entity onto its response DTO
func NewDocketEntryResponse(e *dockets.DocketEntry) DocketEntryResponse {
	response := DocketEntryResponse{
		ID:           e.ID,
		DocketID:     e.DocketID,
		EntryNumber:  e.EntryNumber,
		Description:  e.Description,
		DateFiled:    e.DateFiled,
		DateCreated:  e.DateCreated,
		DateModified: e.DateModified,
		Documents:    []CaseDocumentResponse{},
		Tags:         []TagResponse{},
	}

	if e.Docket != nil {
		docketResponse := NewDocketResponse(e.Docket)
		response.Docket = &docketResponse
	}
	for _, document := range e.Documents {
		response.Documents = append(response.Documents, NewCaseDocumentResponse(document))
	}
	for _, tag := range e.Tags {
		response.Tags = append(response.Tags, NewTagResponse(tag))
	}

	return response
}

// CaseDocumentResponse is the serialized case document resource
type CaseDocumentResponse struct {
	ID               string               `json:"id"`
	DocketEntryID    string               `json:"docket_entry_id"`
	DocketEntry      *DocketEntryResponse `json:"docket_entry,omitempty"`
	DocumentNumber   string               `json:"document_number"`
	AttachmentNumber *int                 `json:"attachment_number"`
	DocumentType     string               `json:"document_type"`
	Description      string               `json:"description"`
	PageCount        *int                 `json:"page_count"`
	FilePath         string               `json:"file_path"`
	SHA1             string               `json:"sha1"`
	IsAvailable      bool                 `json:"is_available"`
	DateUpload       *time.Time           `json:"date_upload"`
	DateCreated      time.Time            `json:"date_created"`
	DateModified     time.Time            `json:"date_modified"`
	Tags             []TagResponse        `json:"tags"`
}

// NewCaseDocumentResponse maps a case document entity onto its response DTO
func NewCaseDocumentResponse(d *dockets.CaseDocument) CaseDocumentResponse {
	response := CaseDocumentResponse{
		ID:               d.ID,
		DocketEntryID:    d.DocketEntryID,
		DocumentNumber:   d.DocumentNumber,
		AttachmentNumber: d.AttachmentNumber,
		DocumentType:     d.DocumentType,
		Description:      d.Description,
		PageCount:        d.PageCount,
		FilePath:         d.FilePath,
		SHA1:             d.SHA1,
		IsAvailable:      d.IsAvailable,
		DateUpload:       d.DateUpload,
		DateCreated:      d.DateCreated,
		DateModified:     d.DateModified,
		Tags:             []TagResponse{},
	}

	if d.DocketEntry != nil {
		entryResponse := NewDocketEntryResponse(d.DocketEntry)
		response.DocketEntry = &entryResponse
	}
	for _, tag := range d.Tags {
		response.Tags = append(response.Tags, NewTagResponse(tag))
	}

	return response
}

// TagResponse is the serialized tag resource
type TagResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
}

// NewTagResponse maps a tag entity onto its response DTO
func NewTagResponse(t *dockets.Tag) TagResponse {
	return TagResponse{
		ID:           t.ID,
		Name:         t.Name,
		DateCreated:  t.DateCreated,
		DateModified: t.DateModified,
	}
}

// OpinionClusterRequest is the write body for opinion clusters
type OpinionClusterRequest struct {
	DocketID           string     `json:"docket_id" validate:"required,uuid4"`
	CaseName           string     `json:"case_name" validate:"required,min=1,max=500"`
	CaseNameShort      string     `json:"case_name_short" validate:"max=200"`
	JudgeNames         string     `json:"judge_names" validate:"max=500"`
	PrecedentialStatus string     `json:"precedential_status" validate:"required,oneof=Published Unpublished Errata In-chambers"`
	CitationCount      int64      `json:"citation_count" validate:"min=0"`
	Blocked            bool       `json:"blocked"`
	DateFiled          time.Time  `json:"date_filed" validate:"required"`
	DateBlocked        *time.Time `json:"date_blocked"`
}

// Validate for validating OpinionClusterRequest struct
func (r *OpinionClusterRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain builds the domain entity for the request
func (r *OpinionClusterRequest) ToDomain() *opinions.OpinionCluster {
	return &opinions.OpinionCluster{
		DocketID:           r.DocketID,
		CaseName:           r.CaseName,
		CaseNameShort:      r.CaseNameShort,
		JudgeNames:         r.JudgeNames,
		PrecedentialStatus: r.PrecedentialStatus,
		CitationCount:      r.CitationCount,
		Blocked:            r.Blocked,
		DateFiled:          r.DateFiled,
		DateBlocked:        r.DateBlocked,
	}
}

// OpinionClusterResponse is the serialized opinion cluster resource
type OpinionClusterResponse struct {
	ID                 string                     `json:"id"`
	DocketID           string                     `json:"docket_id"`
	CaseName           string                     `json:"case_name"`
	CaseNameShort      string                     `json:"case_name_short"`
	JudgeNames         string                     `json:"judge_names"`
	PrecedentialStatus string                     `json:"precedential_status"`
	CitationCount      int64                      `json:"citation_count"`
	Blocked            bool                       `json:"blocked"`
	DateFiled          time.Time                  `json:"date_filed"`
	DateBlocked        *time.Time                 `json:"date_blocked"`
	DateCreated        time.Time                  `json:"date_created"`
	DateModified       time.Time                  `json:"date_modified"`
	SubOpinions        []OpinionResponse          `json:"sub_opinions"`
	Citations          []ReporterCitationResponse `json:"citations"`
}

// NewOpinionClusterResponse maps a cluster entity onto its response DTO
func NewOpinionClusterResponse(c *opinions.OpinionCluster) OpinionClusterResponse {
	response := OpinionClusterResponse{
		ID:                 c.ID,
		DocketID:           c.DocketID,
		CaseName:           c.CaseName,
		CaseNameShort:      c.CaseNameShort,
		JudgeNames:         c.JudgeNames,
		PrecedentialStatus: c.PrecedentialStatus,
		CitationCount:      c.CitationCount,
		Blocked:            c.Blocked,
		DateFiled:          c.DateFiled,
		DateBlocked:        c.DateBlocked,
		DateCreated:        c.DateCreated,
		DateModified:       c.DateModified,
		SubOpinions:        []OpinionResponse{},
		Citations:          []ReporterCitationResponse{},
	}

	for _, opinion := range c.SubOpinions {
		response.SubOpinions = append(response.SubOpinions, NewOpinionResponse(opinion))
	}
	for _, citation := range c.Citations {
		response.Citations = append(response.Citations, NewReporterCitationResponse(citation))
	}

	return response
}

// ReporterCitationResponse is one serialized parallel reporter citation
type ReporterCitationResponse struct {
	ID        string `json:"id"`
	ClusterID string `json:"cluster_id"`
	Volume    int    `json:"volume"`
	Reporter  string `json:"reporter"`
	Page      string `json:"page"`
}

// NewReporterCitationResponse maps a reporter citation entity onto its
// response DTO
func NewReporterCitationResponse(r *opinions.ReporterCitation) ReporterCitationResponse {
	return ReporterCitationResponse{
		ID:        r.ID,
		ClusterID: r.ClusterID,
		Volume:    r.Volume,
		Reporter:  r.Reporter,
		Page:      r.Page,
	}
}

// OpinionRequest is the write body for opinions
type OpinionRequest struct {
	ClusterID   string `json:"cluster_id" validate:"required,uuid4"`
	Type        string `json:"type" validate:"required,oneof=lead concurrence dissent addendum"`
	AuthorStr   string `json:"author_str" validate:"max=200"`
	JoinedByStr string `json:"joined_by_str" validate:"max=500"`
	PerCuriam   bool   `json:"per_curiam"`
	SHA1        string `json:"sha1" validate:"omitempty,len=40"`
	PlainText   string `json:"plain_text"`
	HTML        string `json:"html"`
}

// Validate for validating OpinionRequest struct
func (r *OpinionRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain builds the domain entity for the request
func (r *OpinionRequest) ToDomain() *opinions.Opinion {
	return &opinions.Opinion{
		ClusterID:   r.ClusterID,
		Type:        r.Type,
		AuthorStr:   r.AuthorStr,
		JoinedByStr: r.JoinedByStr,
		PerCuriam:   r.PerCuriam,
		SHA1:        r.SHA1,
		PlainText:   r.PlainText,
		HTML:        r.HTML,
	}
}

// OpinionResponse is the serialized opinion resource
type OpinionResponse struct {
	ID             string             `json:"id"`
	ClusterID      string             `json:"cluster_id"`
	Type           string             `json:"type"`
	AuthorStr      string             `json:"author_str"`
	JoinedByStr    string             `json:"joined_by_str"`
	PerCuriam      bool               `json:"per_curiam"`
	ExtractedByOCR bool               `json:"extracted_by_ocr"`
	SHA1           string             `json:"sha1"`
	PlainText      string             `json:"plain_text"`
	HTML           string             `json:"html"`
	DateCreated    time.Time          `json:"date_created"`
	DateModified   time.Time          `json:"date_modified"`
	OpinionsCited  []CitationResponse `json:"opinions_cited"`
}

// NewOpinionResponse maps an opinion entity onto its response DTO
func NewOpinionResponse(o *opinions.Opinion) OpinionResponse {
	response := OpinionResponse{
		ID:             o.ID,
		ClusterID:      o.ClusterID,
		Type:           o.Type,
		AuthorStr:      o.AuthorStr,
		JoinedByStr:    o.JoinedByStr,
		PerCuriam:      o.PerCuriam,
		ExtractedByOCR: o.ExtractedByOCR,
		SHA1:           o.SHA1,
		PlainText:      o.PlainText,
		HTML:           o.HTML,
		DateCreated:    o.DateCreated,
		DateModified:   o.DateModified,
		OpinionsCited:  []CitationResponse{},
	}

	for _, citation := range o.OpinionsCited {
		response.OpinionsCited = append(response.OpinionsCited, NewCitationResponse(citation))
	}

	return response
}

// CitationRequest is the write body for citation edges
type CitationRequest struct {
	CitingOpinionID string `json:"citing_opinion_id" validate:"required,uuid4"`
	CitedOpinionID  string `json:"cited_opinion_id" validate:"required,uuid4"`
	Depth           int    `json:"depth" validate:"min=1"`
}

// Validate for validating CitationRequest struct
func (r *CitationRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain builds the domain entity for the request
func (r *CitationRequest) ToDomain() *opinions.Citation {
	return &opinions.Citation{
		CitingOpinionID: r.CitingOpinionID,
		CitedOpinionID:  r.CitedOpinionID,
		Depth:           r.Depth,
	}
}

// CitationResponse is the serialized citation edge resource
type CitationResponse struct {
	ID              string `json:"id"`
	CitingOpinionID string `json:"citing_opinion_id"`
	CitedOpinionID  string `json:"cited_opinion_id"`
	Depth           int    `json:"depth"`
}

// NewCitationResponse maps a citation entity onto its response DTO
func NewCitationResponse(c *opinions.Citation) CitationResponse {
	return CitationResponse{
		ID:              c.ID,
		CitingOpinionID: c.CitingOpinionID,
		CitedOpinionID:  c.CitedOpinionID,
		Depth:           c.Depth,
	}
}
