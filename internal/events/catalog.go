// Package events serves the SAP Event Catalog (AsyncAPI 2) self description
// of the ODM finance cost object events and provides the CloudEvents producer
// side for them.
package events

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// CostCenterCreatedType is the CloudEvents type of the cost center
	// created event.
	CostCenterCreatedType = "sap.odm.finance.costobject.CostCenter.Created.v1"

	catalogTitle       = "ODM Finance Cost Center Events"
	catalogVersion     = "0.1.0"
	catalogDescription = "This is an example event catalog that contains only a partial ODM finance cost center V1 event"

	costCenterMessageName = "sap_odm_finance_costobject_CostCenter_Created_v1"
)

// EventSource returns the CloudEvents source attribute for a tenant. The
// source embeds the tenant id, which is what makes the catalog and the
// produced events system instance aware.
func EventSource(tenantID string) string {
	return fmt.Sprintf("/default/sap.foo.bar/%s", tenantID)
}

// NewCatalog builds the SAP Event Catalog document. The document is built
// fresh on every call so handlers can mutate their copy freely.
//
// With a non empty tenantID, every message gains a constant source header so
// consumers know which system instance the events originate from.
func NewCatalog(tenantID string) map[string]any {
	messages := map[string]any{
		costCenterMessageName: map[string]any{
			"name": CostCenterCreatedType,
			"headers": map[string]any{
				"properties": map[string]any{
					"type": map[string]any{
						"const": CostCenterCreatedType,
					},
				},
			},
			"payload": map[string]any{
				"$ref": "#/components/schemas/" + costCenterMessageName,
			},
			"traits": []any{
				map[string]any{"$ref": "#/components/messageTraits/CloudEventsContext"},
			},
		},
	}

	if tenantID != "" {
		for _, m := range messages {
			headers := m.(map[string]any)["headers"].(map[string]any)
			headers["source"] = map[string]any{"const": EventSource(tenantID)}
		}
	}

	return map[string]any{
		"asyncapi":                   "2.0.0",
		"x-sap-catalog-spec-version": "1.1",
		"info": map[string]any{
			"title":       catalogTitle,
			"version":     catalogVersion,
			"description": catalogDescription,
		},
		"channels": map[string]any{
			"default/sap.foo.bar/123456/ce/sap/odm/finance/costobject/CostCenter/Created/v1": map[string]any{
				"subscribe": map[string]any{
					"message": map[string]any{
						"$ref": "#/components/messages/" + costCenterMessageName,
					},
				},
			},
		},
		"components": map[string]any{
			"messages": messages,
			"schemas": map[string]any{
				costCenterMessageName: map[string]any{
					"description":          "The CostCenter.Created.v1 payload. The JSON Schema here is INCOMPLETE",
					"type":                 "object",
					"properties":           map[string]any{"displayName": map[string]any{"type": "string"}},
					"additionalProperties": true,
				},
			},
			"messageTraits": map[string]any{
				"CloudEventsContext": cloudEventsContextTrait(),
			},
		},
	}
}

func cloudEventsContextTrait() map[string]any {
	return map[string]any{
		"x-sap-event-source": "/{region}/sap.s4/{instanceId}",
		"headers": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"description": "Identifies the event.",
					"type":        "string",
					"minLength":   1,
					"examples":    []any{"6925d08e-bc19-4ad7-902e-bd29721cc69b"},
				},
				"source": map[string]any{
					"description": "Identifies the context in which an event happened.",
					"type":        "string",
					"format":      "uri-reference",
					"minLength":   7,
					"maxLength":   64,
					"pattern":     `^/(?!ce/)([a-zA-Z0-9][a-zA-Z0-9.-]{0,8}[a-zA-Z0-9])/(?!ce/)(?!ce$)(?=.{3,15}(/|$))([a-z][a-z0-9]*([.][a-z][a-z0-9]*)+)(?=.{0,37}$)(?!/ce$)(/([a-zA-Z0-9]([a-zA-Z0-9.-]*[a-zA-Z0-9])*$)|$)`,
				},
				"specversion": map[string]any{
					"description": "The version of the CloudEvents specification which the event uses.",
					"type":        "string",
					"const":       "1.0",
				},
				"type": map[string]any{
					"description": "Describes the type of event related to the originating occurrence.",
					"type":        "string",
					"minLength":   10,
					"maxLength":   83,
					"pattern":     `^(?=^.{10,83}$)([a-z][a-z0-9]*([.][a-z][a-z0-9]*)+)[.]([a-zA-Z0-9]+)[.]([a-zA-Z0-9]+)[.](v[0-9]+)$`,
				},
				"datacontenttype": map[string]any{
					"description": "Content type of the data value. Must adhere to RFC 2046 format.",
					"type":        "string",
					"const":       "application/json",
				},
				"dataschema": map[string]any{
					"description": "Identifies the schema that data adheres to.",
					"type":        "string",
					"format":      "uri",
				},
				"subject": map[string]any{
					"description": "Describes the subject of the event in the context of the event producer (identified by source).",
					"type":        "string",
					"minLength":   1,
					"maxLength":   256,
					"examples":    []any{"ce307052-75a0-4a8f-a961-ebf21669bb80"},
				},
				"time": map[string]any{
					"description": "Timestamp of when the occurrence happened. Must adhere to RFC 3339.",
					"format":      "date-time",
					"type":        "string",
					"examples":    []any{"2018-04-05T17:31:00Z"},
				},
				"sappassport": map[string]any{
					"description": "SAP specific tracing header. Also relevant for Integration Monitoring, see TG11.R1: Implement SAP Passport.",
					"type":        "string",
					"minLength":   1,
				},
			},
			"required": []any{"id", "source", "specversion", "type"},
			"patternProperties": map[string]any{
				"^xsap[a-z0-9]+$": map[string]any{
					"description": "Application defined custom extension context attributes.",
					"type":        []any{"boolean", "integer", "string"},
				},
			},
			"additionalProperties": false,
		},
	}
}

// CloudEvent is the CloudEvents 1.0 envelope of a produced event.
type CloudEvent struct {
	SpecVersion     string `json:"specversion"`
	ID              string `json:"id"`
	Source          string `json:"source"`
	Type            string `json:"type"`
	Subject         string `json:"subject"`
	DataContentType string `json:"datacontenttype"`
	Data            any    `json:"data"`
}

// CostCenterCreated is the payload of the cost center created event. The
// payload is deliberately incomplete, one property serves as an example.
type CostCenterCreated struct {
	DisplayName string `json:"displayName"`
}

// NewCostCenterCreated wraps a payload into a CloudEvent for the given tenant.
// An event broker integration would publish the returned envelope.
func NewCostCenterCreated(payload CostCenterCreated, subject, tenantID string) CloudEvent {
	return CloudEvent{
		SpecVersion:     "1.0",
		ID:              uuid.NewString(),
		Source:          EventSource(tenantID),
		Type:            CostCenterCreatedType,
		Subject:         subject,
		DataContentType: "application/json",
		Data:            payload,
	}
}
