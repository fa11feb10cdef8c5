package macro

import (
	"fmt"

	"viewmacro/internal/diag"
	"viewmacro/internal/source"
)

// Reserved names the expansion is built around. These are part of the
// caller-visible contract of the generated code and must not change.
const (
	// AttributeName is the attribute that triggers expansion.
	AttributeName = "ViewAction"
	// StorePropertyName is the stored property the invariant checker requires.
	StorePropertyName = "store"
	// SendMethodName is both the scanned member and the generated method name.
	SendMethodName = "send"
	// StateMemberName is the required member name of the attribute argument.
	StateMemberName = "state"
)

// Case enumerates the expansion's diagnostic cases.
type Case uint8

const (
	// CaseNoStoreVariable: the declaration has no stored property named
	// 'store'. Fatal for the expansion.
	CaseNoStoreVariable Case = iota
	// CaseHasDirectStoreDotSend: the declaration body calls 'store.send'
	// directly instead of going through the generated 'send'. Advisory.
	CaseHasDirectStoreDotSend
)

// Code returns the stable (domain, id) identifier of the case.
func (c Case) Code() diag.Code {
	switch c {
	case CaseNoStoreVariable:
		return diag.Code{Domain: diag.DomainMacro, ID: "noStoreVariable"}
	case CaseHasDirectStoreDotSend:
		return diag.Code{Domain: diag.DomainMacro, ID: "hasDirectStoreDotSend"}
	}
	return diag.Code{}
}

// Severity returns the fixed severity of the case.
func (c Case) Severity() diag.Severity {
	switch c {
	case CaseNoStoreVariable:
		return diag.SevError
	case CaseHasDirectStoreDotSend:
		return diag.SevWarning
	}
	return diag.SevInfo
}

// Message renders the human text of the case. declName parameterizes
// CaseNoStoreVariable and is ignored otherwise; pass "" when the
// declaration kind has no obtainable name.
func (c Case) Message(declName string) string {
	switch c {
	case CaseNoStoreVariable:
		if declName == "" {
			return fmt.Sprintf(
				"'@%s' requires a '%s' property of type 'Store'",
				AttributeName, StorePropertyName)
		}
		return fmt.Sprintf(
			"'@%s' requires '%s' to have a '%s' property of type 'Store'",
			AttributeName, declName, StorePropertyName)
	case CaseHasDirectStoreDotSend:
		return fmt.Sprintf(
			"do not call '%s.%s' directly when using '@%s'; call '%s' instead",
			StorePropertyName, SendMethodName, AttributeName, SendMethodName)
	}
	return ""
}

// Render builds a ready Diagnostic for the case, anchored at the given node
// span.
func (c Case) Render(anchor source.Span, declName string) diag.Diagnostic {
	return diag.New(c.Severity(), c.Code(), anchor, c.Message(declName))
}
