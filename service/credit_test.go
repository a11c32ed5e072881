package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccx-marketplace/model"
)

func catalogFixture() []model.CarbonCredit {
	return []model.CarbonCredit{
		{
			ID:                 "CC-1001",
			ProjectName:        "Amazonas Forest Conservation",
			Supplier:           "Rainforest Alliance Partners",
			CreditType:         "REDD+ Forestry",
			Vintage:            2022,
			QuantityAvailable:  5000,
			PricePerTon:        18.5,
			Location:           "Para, Brazil",
			VerificationStatus: "verified",
			Methodology:        "VM0015",
			PublicDetails:      model.JSONMap{"registry": "Verra"},
			PrivateDetails:     model.JSONMap{"supplier_contact": "offsets@rainforestpartners.example"},
		},
		{
			ID:                 "CC-1002",
			ProjectName:        "Gujarat Solar Replacement",
			Supplier:           "Surya Clean Energy Ltd",
			CreditType:         "Renewable Energy",
			Vintage:            2023,
			QuantityAvailable:  12000,
			PricePerTon:        9.75,
			Location:           "Gujarat, India",
			VerificationStatus: "verified",
			Methodology:        "ACM0002",
		},
	}
}

func TestListCredits(t *testing.T) {
	t.Parallel()

	svc := NewCreditService(&fakeCreditRepo{credits: catalogFixture()})

	resp, err := svc.ListCredits(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 2)

	assert.Equal(t, "CC-1001", resp[0].ID)
	assert.Equal(t, "Amazonas Forest Conservation", resp[0].ProjectName)
	assert.Equal(t, 5000, resp[0].QuantityAvailable)
	assert.Equal(t, 18.5, resp[0].PricePerTon)
	assert.Equal(t, "CC-1002", resp[1].ID)
}

func TestTotalAvailable(t *testing.T) {
	t.Parallel()

	svc := NewCreditService(&fakeCreditRepo{credits: catalogFixture()})

	resp, err := svc.TotalAvailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 17000, resp.TotalAvailableAmount)
}

func TestGetCredit(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		svc := NewCreditService(&fakeCreditRepo{credits: catalogFixture()})

		credit, err := svc.GetCredit(context.Background(), "CC-1001")
		require.NoError(t, err)
		assert.Equal(t, "CC-1001", credit.ID)
		assert.Equal(t, "Verra", credit.PublicDetails["registry"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewCreditService(&fakeCreditRepo{credits: catalogFixture()})

		credit, err := svc.GetCredit(context.Background(), "CC-9999")
		assert.ErrorIs(t, err, ErrCreditNotFound)
		assert.Nil(t, credit)
	})

	t.Run("repository failure passes through", func(t *testing.T) {
		repoErr := errors.New("connection refused")
		svc := NewCreditService(&fakeCreditRepo{findErr: repoErr})

		_, err := svc.GetCredit(context.Background(), "CC-1001")
		assert.ErrorIs(t, err, repoErr)
	})
}
