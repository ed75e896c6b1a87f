package request

import "strings"

type DomainCheckRequest struct {
	DomainName string `json:"domain_name" binding:"required"`
}

func (r DomainCheckRequest) ResolveDomainName() string {
	return strings.TrimSpace(r.DomainName)
}
