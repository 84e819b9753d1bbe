package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/resolver"
)

const (
	auditActionKey ContextKey = "audit_action"
	auditNamesKey  ContextKey = "audit_names"
	auditErrorKey  ContextKey = "audit_error"
)

// SetAuditAction tags the request with the action and names it operated on.
// RequestLogger copies them into the audit entry.
func SetAuditAction(c *gin.Context, action string, names ...string) {
	c.Set(string(auditActionKey), action)
	if len(names) > 0 {
		c.Set(string(auditNamesKey), names)
	}
}

// SetAuditError records the error that ended the request.
func SetAuditError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	c.Set(string(auditErrorKey), err)
}

type auditAnnotations struct {
	action    string
	names     []string
	err       string
	errorKind string
}

func auditAnnotationsFrom(c *gin.Context) auditAnnotations {
	var a auditAnnotations
	a.action = c.GetString(string(auditActionKey))
	a.names = c.GetStringSlice(string(auditNamesKey))

	if v, ok := c.Get(string(auditErrorKey)); ok {
		if err, ok := v.(error); ok {
			a.err = err.Error()
			if kind := resolver.KindOf(err); kind != 0 {
				a.errorKind = kind.String()
			}
		}
	}
	return a
}
