package request

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAddLivestockCostRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     AddLivestockCostRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  AddLivestockCostRequest{Amount: decimal.NewFromInt(100), Month: "2025-03"},
		},
		{
			name:    "negative amount",
			req:     AddLivestockCostRequest{Amount: decimal.NewFromInt(-1), Month: "2025-03"},
			wantErr: true,
		},
		{
			name:    "missing month",
			req:     AddLivestockCostRequest{Amount: decimal.NewFromInt(100)},
			wantErr: true,
		},
		{
			name:    "month without zero padding",
			req:     AddLivestockCostRequest{Amount: decimal.NewFromInt(100), Month: "2025-3"},
			wantErr: true,
		},
		{
			name:    "month out of range",
			req:     AddLivestockCostRequest{Amount: decimal.NewFromInt(100), Month: "2025-13"},
			wantErr: true,
		},
		{
			name:    "free-form month label",
			req:     AddLivestockCostRequest{Amount: decimal.NewFromInt(100), Month: "March 2025"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSellLivestockRequest_Validate(t *testing.T) {
	valid := SellLivestockRequest{Quantity: 4, SalePrice: decimal.NewFromInt(500)}
	assert.NoError(t, valid.Validate())

	zeroQty := SellLivestockRequest{SalePrice: decimal.NewFromInt(500)}
	assert.Error(t, zeroQty.Validate())

	// Free transfers are recorded as zero-price sales.
	freeTransfer := SellLivestockRequest{Quantity: 4}
	assert.NoError(t, freeTransfer.Validate())

	negativePrice := SellLivestockRequest{Quantity: 4, SalePrice: decimal.NewFromInt(-1)}
	assert.Error(t, negativePrice.Validate())
}

func TestSellCropRequest_Validate(t *testing.T) {
	valid := SellCropRequest{Quantity: 20, SalePrice: decimal.NewFromInt(180)}
	assert.NoError(t, valid.Validate())

	freeTransfer := SellCropRequest{Quantity: 20}
	assert.NoError(t, freeTransfer.Validate())

	negativePrice := SellCropRequest{Quantity: 20, SalePrice: decimal.NewFromInt(-5)}
	assert.Error(t, negativePrice.Validate())
}

func TestCreateEquipmentRequest_Validate(t *testing.T) {
	valid := CreateEquipmentRequest{
		Name:            "Tractor",
		AcquisitionType: "Purchased",
		AcquisitionDate: "2025-03-01",
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.AcquisitionType = "Leased"
	assert.Error(t, badType.Validate())

	badDate := valid
	badDate.AcquisitionDate = "01/03/2025"
	assert.Error(t, badDate.Validate())
}

func TestCreateTaskRequest_Validate(t *testing.T) {
	valid := CreateTaskRequest{
		Title:      "Shear sheep",
		TaskDate:   "2025-04-01",
		Time:       "08:30",
		Recurrence: "Weekly",
	}
	assert.NoError(t, valid.Validate())

	badTime := valid
	badTime.Time = "8am"
	assert.Error(t, badTime.Validate())

	badRecurrence := valid
	badRecurrence.Recurrence = "Fortnightly"
	assert.Error(t, badRecurrence.Validate())
}

func TestRecordPaymentRequest_Validate(t *testing.T) {
	valid := RecordPaymentRequest{
		WorkerID:    1,
		Amount:      decimal.NewFromInt(1200),
		PaymentDate: "2025-03-31",
		PaymentType: "Monthly",
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.PaymentType = "Hourly"
	assert.Error(t, badType.Validate())

	zeroAmount := valid
	zeroAmount.Amount = decimal.Zero
	assert.Error(t, zeroAmount.Validate())
}
