// Package seva resolves government service guides by name.
//
// A query matches a service by case-insensitive full-string equality on
// the record name; the first match in table order wins. The rendered
// guide follows a fixed section order (fees, procedure, documents,
// official link) and is byte-identical for identical inputs.
package seva

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nagrikmitra/mitra/refdata"
)

// NoDataMessage is returned when the service table is missing or empty.
const NoDataMessage = "❌ No service guides are available at the moment. Please check back later."

// Source supplies the service table. *refdata.Store and *refdata.Loader
// both satisfy it.
type Source interface {
	Services() ([]refdata.ServiceRecord, error)
}

// Resolver answers service-guide queries.
type Resolver struct {
	source Source
	logger *zap.Logger
}

// New creates a Resolver. A nil logger defaults to a no-op logger.
func New(source Source, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{source: source, logger: logger}
}

// Resolve returns the formatted guide for the named service, a not-found
// message listing every available service, or a no-data message when the
// table cannot be loaded. It never returns an error to the caller.
func (r *Resolver) Resolve(serviceName string) string {
	services, err := r.source.Services()
	if err != nil {
		if !errors.Is(err, refdata.ErrUnavailable) {
			r.logger.Error("service table load failed", zap.Error(err))
		}
		return NoDataMessage
	}
	if len(services) == 0 {
		return NoDataMessage
	}

	for _, service := range services {
		if strings.EqualFold(service.Name, serviceName) {
			r.logger.Info("service guide resolved", zap.String("service", service.Name))
			return renderGuide(service)
		}
	}

	r.logger.Warn("service not found", zap.String("query", serviceName))
	return fmt.Sprintf("❌ Service not found: %s. Available services are: %s.",
		serviceName, strings.Join(refdata.ServiceNames(services), ", "))
}

// renderGuide formats one service record. Sections with no source data
// are omitted entirely, headers included.
func renderGuide(service refdata.ServiceRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📜 *Guide for %s*\n\n", service.Name)

	if len(service.Fees) > 0 {
		b.WriteString("💰 *Fees:*\n")
		for _, feeType := range service.FeeTypes() {
			fmt.Fprintf(&b, "- *%s:* %s\n", feeType, service.Fees[feeType])
		}
		b.WriteString("\n")
	}

	if len(service.Procedure) > 0 {
		b.WriteString("📝 *Procedure:*\n")
		for i, step := range service.Procedure {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}

	if len(service.DocumentsRequired) > 0 {
		b.WriteString("\n📄 *Documents Required:*\n")
		for _, doc := range service.DocumentsRequired {
			fmt.Fprintf(&b, "- %s\n", doc)
		}
	}

	if service.OfficialLink != "" {
		fmt.Fprintf(&b, "\n🔗 *Official Link:* %s", service.OfficialLink)
	}

	b.WriteString("\n\n🔄 *Need more help?* Ask me about any step!")
	return b.String()
}
