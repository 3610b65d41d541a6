package onboarding

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/pharmatrust/custody/internal/domain"
)

// Registrar performs the on-chain participant registration. One call is one
// attempt; retries are the caller's decision.
//
//go:generate mockgen -source=onboarder.go -destination=../mocks/onboarding.go -package=mocks -mock_names=Registrar=MockRegistrar,Onboarder=MockOnboarder
type Registrar interface {
	RegisterParticipant(ctx context.Context, wallet, taxCode, licenseNo string) (*domain.RegistrationReceipt, error)
}

// Onboarder is the per-variant capability for participant onboarding. Each
// participant kind has exactly one implementation; callers dispatch through
// the variant instead of branching on role strings.
type Onboarder interface {
	// Kind identifies the participant variant this onboarder serves
	Kind() domain.ParticipantKind
	// ValidateInfo checks the variant's required business fields
	ValidateInfo(info domain.CompanyInfo) error
	// Register performs the variant's on-chain registration
	Register(ctx context.Context, registrar Registrar, info domain.CompanyInfo) (*domain.RegistrationReceipt, error)
}

// Onboarders builds the full variant dispatch table
func Onboarders() map[domain.ParticipantKind]Onboarder {
	return map[domain.ParticipantKind]Onboarder{
		domain.ParticipantPharmaCompany: &pharmaCompanyOnboarder{},
		domain.ParticipantDistributor:   &distributorOnboarder{},
		domain.ParticipantPharmacy:      &pharmacyOnboarder{},
	}
}

func validateCommonInfo(info domain.CompanyInfo) error {
	if info.CompanyName == "" {
		return domain.NewValidationError("company name is required")
	}
	if info.TaxCode == "" {
		return domain.NewValidationError("tax code is required")
	}
	if !common.IsHexAddress(info.WalletAddress) {
		return domain.NewValidationError("invalid wallet address %q", info.WalletAddress)
	}
	return nil
}

// pharmaCompanyOnboarder registers manufacturers; requires a GMP license
type pharmaCompanyOnboarder struct{}

func (o *pharmaCompanyOnboarder) Kind() domain.ParticipantKind {
	return domain.ParticipantPharmaCompany
}

func (o *pharmaCompanyOnboarder) ValidateInfo(info domain.CompanyInfo) error {
	if err := validateCommonInfo(info); err != nil {
		return err
	}
	if info.LicenseNo == "" {
		return domain.NewValidationError("manufacturing license number is required")
	}
	return nil
}

func (o *pharmaCompanyOnboarder) Register(ctx context.Context, registrar Registrar, info domain.CompanyInfo) (*domain.RegistrationReceipt, error) {
	return registrar.RegisterParticipant(ctx, info.WalletAddress, info.TaxCode, info.LicenseNo)
}

// distributorOnboarder registers distributors; a distribution license is
// optional as some jurisdictions only issue tax registrations
type distributorOnboarder struct{}

func (o *distributorOnboarder) Kind() domain.ParticipantKind {
	return domain.ParticipantDistributor
}

func (o *distributorOnboarder) ValidateInfo(info domain.CompanyInfo) error {
	return validateCommonInfo(info)
}

func (o *distributorOnboarder) Register(ctx context.Context, registrar Registrar, info domain.CompanyInfo) (*domain.RegistrationReceipt, error) {
	return registrar.RegisterParticipant(ctx, info.WalletAddress, info.TaxCode, info.LicenseNo)
}

// pharmacyOnboarder registers pharmacies; requires an operating license
type pharmacyOnboarder struct{}

func (o *pharmacyOnboarder) Kind() domain.ParticipantKind {
	return domain.ParticipantPharmacy
}

func (o *pharmacyOnboarder) ValidateInfo(info domain.CompanyInfo) error {
	if err := validateCommonInfo(info); err != nil {
		return err
	}
	if info.LicenseNo == "" {
		return domain.NewValidationError("pharmacy operating license number is required")
	}
	return nil
}

func (o *pharmacyOnboarder) Register(ctx context.Context, registrar Registrar, info domain.CompanyInfo) (*domain.RegistrationReceipt, error) {
	return registrar.RegisterParticipant(ctx, info.WalletAddress, info.TaxCode, info.LicenseNo)
}
