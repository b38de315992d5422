package tx

import "testing"

func TestTableNameTemplate(t *testing.T) {
	if TableNameTemplate("Order-Service;", "mappings") != "cbridge_orderservice_mappings" {
		t.Errorf("Failed sanitizing service name into table name")
	}

	if SanitizeTableName("my svc.v2") != "mysvcv2" {
		t.Errorf("Failed removing spaces and dots from table name")
	}
}
