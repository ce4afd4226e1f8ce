package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var ErrUnsupportedExportFormat = errors.New("unsupported export format")

// ExportedDocument is a rendered quotation ready to be downloaded.
type ExportedDocument struct {
	FileName    string
	ContentType string
	Content     []byte
}

type ILPUExportUseCase interface {
	Export(ctx context.Context, id string, format string) (ExportedDocument, error)
}

type LPUExportUseCase struct {
	repo          interfaces.ILPURepository
	renderers     map[string]interfaces.IDocumentRenderer
	portalBaseURL string
	now           func() time.Time
}

var _ ILPUExportUseCase = (*LPUExportUseCase)(nil)

func NewLPUExportUseCase(repo interfaces.ILPURepository, portalBaseURL string, renderers ...interfaces.IDocumentRenderer) *LPUExportUseCase {
	byFormat := make(map[string]interfaces.IDocumentRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &LPUExportUseCase{
		repo:          repo,
		renderers:     byFormat,
		portalBaseURL: strings.TrimRight(portalBaseURL, "/"),
		now:           time.Now,
	}
}

func (u *LPUExportUseCase) Export(ctx context.Context, id string, format string) (ExportedDocument, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	renderer, ok := u.renderers[format]
	if !ok {
		return ExportedDocument{}, fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, format)
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return ExportedDocument{}, ErrInvalidLPUID
	}
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return ExportedDocument{}, err
	}
	if l.ID == "" {
		return ExportedDocument{}, ErrLPUNotFound
	}
	if _, err := currentStatus(l); err != nil {
		return ExportedDocument{}, err
	}

	doc := BuildQuotationDocument(l, u.portalBaseURL, u.now())
	content, err := renderer.Render(doc)
	if err != nil {
		logrus.Errorf("[lpu][export] render failed lpu_id=%s format=%s err=%v", l.ID, format, err)
		return ExportedDocument{}, err
	}

	logrus.Infof("[lpu][export] rendered lpu_id=%s format=%s bytes=%d", l.ID, format, len(content))
	return ExportedDocument{
		FileName:    fmt.Sprintf("lpu-%s.%s", l.ID, format),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}

// SupplierAccessURL is the portal link sent to invited suppliers.
func SupplierAccessURL(baseURL, token string) string {
	if baseURL == "" || token == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/fornecedor/login/" + token
}

// BuildQuotationDocument flattens an LPU into printable lines. When selected_items is
// set only those items are listed; otherwise every priced or quantified item is.
func BuildQuotationDocument(l entities.LPU, portalBaseURL string, now time.Time) entities.QuotationDocument {
	doc := entities.QuotationDocument{
		LPUID:      l.ID,
		WorkID:     l.WorkID,
		LimitDate:  l.LimitDate,
		Status:     l.Status,
		Submission: cloneMetadata(l.SubmissionMetadata),
		Comment:    l.RevisionComment,
		IssuedAt:   stamp(now),
	}
	if doc.Status == "" {
		doc.Status = entities.LPUStatusDraft
	}
	if l.Status == entities.LPUStatusWaiting {
		doc.AccessURL = SupplierAccessURL(portalBaseURL, l.QuoteToken)
	}

	for _, item := range lineItems(l.SelectedItems, l.Prices, l.Quantities) {
		price, priced := l.Prices[item]
		qty := l.Quantities[item]
		line := entities.QuotationLine{ItemID: item, Quantity: qty, Price: price, Priced: priced, Total: qty * price}
		doc.Total += line.Total
		doc.Lines = append(doc.Lines, line)
	}

	for _, rev := range l.History {
		sum := entities.RevisionSummary{
			Number:    rev.RevisionNumber,
			CreatedAt: rev.CreatedAt,
			Items:     len(rev.Prices),
		}
		if rev.SubmissionMetadata != nil {
			sum.SupplierName = rev.SubmissionMetadata.SupplierName
			sum.SignerName = rev.SubmissionMetadata.SignerName
		}
		for item, price := range rev.Prices {
			sum.Total += price * rev.Quantities[item]
		}
		doc.Revisions = append(doc.Revisions, sum)
	}
	return doc
}

func lineItems(selected []string, prices, quantities map[string]float64) []string {
	seen := make(map[string]struct{})
	var items []string
	add := func(id string) {
		id = strings.TrimSpace(id)
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		items = append(items, id)
	}

	if len(selected) > 0 {
		for _, id := range selected {
			add(id)
		}
	} else {
		for id := range prices {
			add(id)
		}
		for id := range quantities {
			add(id)
		}
	}
	slices.SortFunc(items, CompareItemIDs)
	return items
}

// CompareItemIDs orders dotted item codes naturally: "1.2" < "1.10" < "2".
// Numeric segments sort before textual ones.
func CompareItemIDs(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aErr := strconv.Atoi(as[i])
		bn, bErr := strconv.Atoi(bs[i])
		switch {
		case aErr == nil && bErr == nil:
			if c := cmp.Compare(an, bn); c != 0 {
				return c
			}
		case aErr == nil:
			return -1
		case bErr == nil:
			return 1
		default:
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
		}
	}
	if c := cmp.Compare(len(as), len(bs)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
