package validate_test

import (
	"testing"
	"time"

	"github.com/warungku/warung/pkg/validate"
)

type registerInput struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"    validate:"nullable,digits=10"`
	Status   string `json:"status"   validate:"required,in=RECEIVED,PREPARING,COMPLETED"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Price    int64  `json:"price"    validate:"gte=0"`
}

func valid() registerInput {
	return registerInput{
		Name:     "Bu Tini",
		Email:    "tini@warung.test",
		Password: "secret123",
		Phone:    "", // nullable
		Status:   "RECEIVED",
		Quantity: 2,
		Price:    15000,
	}
}

func TestValidInput(t *testing.T) {
	if errs := validate.Struct(valid()); validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected errors for empty input")
	}
	for _, field := range []string{"name", "email", "password", "status", "quantity"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got: %v", field, errs)
		}
	}
}

func TestEmailRule(t *testing.T) {
	in := valid()
	in.Email = "not-an-email"
	errs := validate.Struct(in)
	if _, ok := errs["email"]; !ok {
		t.Errorf("expected email error, got: %v", errs)
	}
}

func TestMinRule(t *testing.T) {
	in := valid()
	in.Password = "short"
	errs := validate.Struct(in)
	if _, ok := errs["password"]; !ok {
		t.Errorf("expected password error, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	in := valid()
	in.Status = "SHIPPED"
	errs := validate.Struct(in)
	if _, ok := errs["status"]; !ok {
		t.Errorf("expected status error, got: %v", errs)
	}
}

func TestGtRule(t *testing.T) {
	in := valid()
	in.Quantity = 0
	errs := validate.Struct(in)
	if _, ok := errs["quantity"]; !ok {
		t.Errorf("expected quantity error, got: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	in := valid()
	in.Phone = "" // empty nullable field: digits rule must not run
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}

	in.Phone = "12345" // present but wrong length
	errs := validate.Struct(in)
	if _, ok := errs["phone"]; !ok {
		t.Errorf("expected phone error, got: %v", errs)
	}
}

func TestRequiredTime(t *testing.T) {
	type orderInput struct {
		PickupTime time.Time `json:"pickup_time" validate:"required"`
	}

	errs := validate.Struct(orderInput{})
	if _, ok := errs["pickup_time"]; !ok {
		t.Errorf("expected pickup_time error for zero time, got: %v", errs)
	}

	errs = validate.Struct(orderInput{PickupTime: time.Now()})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestPointerInput(t *testing.T) {
	in := valid()
	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		t.Errorf("expected no errors for pointer input, got: %v", errs)
	}
}
