// Package prereq builds instructions for the Turbin3 prerequisite enrollment
// program on devnet. The program is an Anchor program; its interface (account
// order, seeds, discriminators) comes from the program's published IDL.
package prereq

import (
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	// ProgramID is the enrollment program.
	ProgramID = solana.MustPublicKeyFromBase58("TRBZyQHB3m68FGeVsqTK39Wm4xejadjVhP5MAZaKWDM")

	// CollectionID is the Metaplex Core collection the completion NFT is minted into.
	CollectionID = solana.MustPublicKeyFromBase58("5ebsp5RChCGK7ssRZMVMufgVZhd2kFbNaotcZ5UvytN2")

	// MplCoreProgramID is the Metaplex Core program.
	MplCoreProgramID = solana.MustPublicKeyFromBase58("CoREENxT6tW1HoK8ypY1SxRMZTcVPm7R94rH4PZNhX7d")

	// AuthorityID is the collection update authority PDA as stored on chain.
	// Deriving it from the "authority" seed alone gives a different address,
	// so the program's expected value is pinned here.
	AuthorityID = solana.MustPublicKeyFromBase58("5xstXUdRJKxRrqbJuo5SAfKf68y7afoYwTeH1FXbsA3k")
)

// EnrollmentSeed prefixes the user's address in the enrollment account PDA seeds.
const EnrollmentSeed = "prereqs"

// IDL discriminators of the submit instructions.
var (
	SubmitRsDiscriminator = [8]byte{77, 124, 82, 163, 21, 133, 181, 206}
	SubmitTsDiscriminator = [8]byte{137, 241, 199, 223, 125, 33, 85, 217}
)

// Discriminator returns the Anchor instruction discriminator for name:
// the first 8 bytes of sha256("global:<name>").
func Discriminator(name string) [8]byte {
	sum := sha256.Sum256([]byte("global:" + name))
	var out [8]byte
	copy(out[:], sum[:8])
	return out
}

// FindEnrollmentAccount derives the enrollment account PDA for user.
func FindEnrollmentAccount(user solana.PublicKey) (solana.PublicKey, uint8, error) {
	pda, bump, err := solana.FindProgramAddress(
		[][]byte{[]byte(EnrollmentSeed), user.Bytes()},
		ProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive enrollment account: %w", err)
	}
	return pda, bump, nil
}

type initializeArgs struct {
	Github string
}

// NewInitializeInstruction creates the enrollment account for user, recording
// their GitHub handle.
func NewInitializeInstruction(user solana.PublicKey, github string) (solana.Instruction, error) {
	if github == "" {
		return nil, fmt.Errorf("github handle is required")
	}

	account, _, err := FindEnrollmentAccount(user)
	if err != nil {
		return nil, err
	}

	args, err := bin.MarshalBorsh(&initializeArgs{Github: github})
	if err != nil {
		return nil, fmt.Errorf("failed to encode initialize args: %w", err)
	}
	disc := Discriminator("initialize")
	data := append(disc[:], args...)

	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			solana.NewAccountMeta(user, true, true),
			solana.NewAccountMeta(account, true, false),
			solana.NewAccountMeta(solana.SystemProgramID, false, false),
		},
		data,
	), nil
}

// NewSubmitRsInstruction marks the Rust prerequisite complete, minting an
// NFT at mint into the collection. Both user and mint must sign.
func NewSubmitRsInstruction(user, mint solana.PublicKey) (solana.Instruction, error) {
	return newSubmitInstruction(SubmitRsDiscriminator, user, mint)
}

// NewSubmitTsInstruction is the TypeScript counterpart of NewSubmitRsInstruction.
func NewSubmitTsInstruction(user, mint solana.PublicKey) (solana.Instruction, error) {
	return newSubmitInstruction(SubmitTsDiscriminator, user, mint)
}

func newSubmitInstruction(disc [8]byte, user, mint solana.PublicKey) (solana.Instruction, error) {
	account, _, err := FindEnrollmentAccount(user)
	if err != nil {
		return nil, err
	}

	data := make([]byte, len(disc))
	copy(data, disc[:])

	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			solana.NewAccountMeta(user, true, true),
			solana.NewAccountMeta(account, true, false),
			solana.NewAccountMeta(mint, true, true),
			solana.NewAccountMeta(CollectionID, true, false),
			solana.NewAccountMeta(AuthorityID, false, false),
			solana.NewAccountMeta(MplCoreProgramID, false, false),
			solana.NewAccountMeta(solana.SystemProgramID, false, false),
		},
		data,
	), nil
}
