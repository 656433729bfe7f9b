package models

import (
	"strings"
	"testing"
)

func TestAddLineItem_TruncatesLongFields(t *testing.T) {
	var p PaymentRequest
	longID := strings.Repeat("i", 40)
	longName := strings.Repeat("n", 40)
	longDescription := strings.Repeat("d", 300)

	item := p.AddLineItem(longID, longName, longDescription, 2, 9.99)

	if len(item.ID) != 31 {
		t.Fatalf("ID length got %d want %d", len(item.ID), 31)
	}
	if item.ID != longID[:31] {
		t.Fatalf("ID got %q want prefix of input", item.ID)
	}
	if len(item.Name) != 31 {
		t.Fatalf("Name length got %d want %d", len(item.Name), 31)
	}
	if len(item.Description) != 255 {
		t.Fatalf("Description length got %d want %d", len(item.Description), 255)
	}
}

func TestAddLineItem_KeepsFieldsAtLimit(t *testing.T) {
	var p PaymentRequest
	id := strings.Repeat("i", 31)
	name := strings.Repeat("n", 31)
	description := strings.Repeat("d", 255)

	item := p.AddLineItem(id, name, description, 1, 1.00)

	if item.ID != id {
		t.Fatalf("ID at limit was modified: %q", item.ID)
	}
	if item.Name != name {
		t.Fatalf("Name at limit was modified: %q", item.Name)
	}
	if item.Description != description {
		t.Fatalf("Description at limit was modified")
	}
}

func TestAddLineItem_PreservesInsertionOrder(t *testing.T) {
	var p PaymentRequest
	p.AddLineItem("1", "Widget", "Widget", 3, 34.45)
	p.AddLineItem("2", "Bauble", "Bauble", 3, 2.45)
	p.AddLineItem("3", "Thingamajig", "Thingamajig", 3, 12.57)

	if len(p.LineItems) != 3 {
		t.Fatalf("line item count got %d want 3", len(p.LineItems))
	}
	for i, want := range []string{"Widget", "Bauble", "Thingamajig"} {
		if p.LineItems[i].Name != want {
			t.Fatalf("item %d got %q want %q", i, p.LineItems[i].Name, want)
		}
	}
}

func TestMutators_AssignFields(t *testing.T) {
	var p PaymentRequest
	p.AddCreditCard("4007000000027", "0530", "123")
	p.AddBillingAddress("bfirst", "blast", "bcompany", "bstreet", "bcity", "bstate", "bzip", "bcountry")
	p.AddShippingAddress("sfirst", "slast", "scompany", "sstreet", "scity", "sstate", "szip", "scountry")

	if p.CreditCard.CardNumber != "4007000000027" || p.CreditCard.ExpirationDate != "0530" || p.CreditCard.CVV != "123" {
		t.Fatalf("credit card not assigned: %+v", p.CreditCard)
	}
	if p.BillingAddress.FirstName != "bfirst" || p.BillingAddress.Country != "bcountry" {
		t.Fatalf("billing address not assigned: %+v", p.BillingAddress)
	}
	if p.ShippingAddress.FirstName != "sfirst" || p.ShippingAddress.Zip != "szip" {
		t.Fatalf("shipping address not assigned: %+v", p.ShippingAddress)
	}
}

func TestResponseConstructors_FixSuccessPerKind(t *testing.T) {
	cases := []struct {
		resp    *PaymentResponse
		kind    ResponseKind
		success bool
	}{
		{NewAuthorizationSuccess("Ok", "<raw/>"), KindAuthorizationSuccess, true},
		{NewAuthorizationFailure("bad key", "<raw/>"), KindAuthorizationFailure, false},
		{NewPaymentSuccess("approved", "<raw/>"), KindPaymentSuccess, true},
		{NewPaymentFailure("declined", "<raw/>"), KindPaymentFailure, false},
	}
	for _, c := range cases {
		if c.resp.Kind != c.kind {
			t.Fatalf("kind got %q want %q", c.resp.Kind, c.kind)
		}
		if c.resp.Success != c.success {
			t.Fatalf("%q success got %v want %v", c.kind, c.resp.Success, c.success)
		}
		if c.resp.RawResponse != "<raw/>" {
			t.Fatalf("%q raw response not carried", c.kind)
		}
	}
}
