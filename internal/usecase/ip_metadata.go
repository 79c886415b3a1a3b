package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/sha3"

	"storymcp/internal/domain"
)

// ipfsGateway serves ipfs:// URIs over HTTP for hashing pinned media.
const ipfsGateway = "https://ipfs.io/ipfs/"

// MetadataUseCase pins IP asset media and metadata documents to IPFS. It
// is only available when a pinning credential is configured; every method
// fails with ErrIPFSDisabled otherwise.
type MetadataUseCase struct {
	ipfs    IPFSClient
	enabled bool
	logger  *slog.Logger
	now     func() time.Time
}

// NewMetadataUseCase creates the metadata use case. ipfs may be nil when
// enabled is false.
func NewMetadataUseCase(ipfs IPFSClient, enabled bool, logger *slog.Logger) *MetadataUseCase {
	return &MetadataUseCase{
		ipfs:    ipfs,
		enabled: enabled,
		logger:  logger.With("usecase", "MetadataUseCase"),
		now:     time.Now,
	}
}

// Enabled reports whether IPFS pinning is configured.
func (u *MetadataUseCase) Enabled() bool {
	return u.enabled
}

// UploadImage pins raw image bytes and returns their ipfs:// URI.
func (u *MetadataUseCase) UploadImage(ctx context.Context, data []byte, filename string) (string, error) {
	ctx, span := tracer.Start(ctx, "MetadataUseCase.UploadImage",
		trace.WithAttributes(attribute.String("filename", filename), attribute.Int("size", len(data))))
	defer span.End()

	if !u.enabled {
		return "", ErrIPFSDisabled
	}
	if len(data) == 0 {
		return "", fmt.Errorf("image data is empty")
	}

	uri, err := u.ipfs.PinFile(ctx, data, filename)
	if err != nil {
		return "", fmt.Errorf("failed to pin image: %w", err)
	}
	return uri, nil
}

// UploadImageFromURL fetches an image over HTTP(S) and pins it, returning
// its ipfs:// URI.
func (u *MetadataUseCase) UploadImageFromURL(ctx context.Context, url, filename string) (string, error) {
	ctx, span := tracer.Start(ctx, "MetadataUseCase.UploadImageFromURL",
		trace.WithAttributes(attribute.String("url", url)))
	defer span.End()

	if !u.enabled {
		return "", ErrIPFSDisabled
	}
	data, err := u.ipfs.Download(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	return u.UploadImage(ctx, data, filename)
}

// CreateIPMetadata builds and pins the ERC-721 NFT metadata and the IP
// metadata documents for an asset, returning the registration envelope
// with the keccak256 hashes of both documents.
func (u *MetadataUseCase) CreateIPMetadata(ctx context.Context, imageURI, name, description string, attributes []domain.Attribute) (*domain.IPMetadataResult, error) {
	ctx, span := tracer.Start(ctx, "MetadataUseCase.CreateIPMetadata",
		trace.WithAttributes(attribute.String("name", name)))
	defer span.End()

	if !u.enabled {
		return nil, ErrIPFSDisabled
	}
	if imageURI == "" || name == "" {
		return nil, fmt.Errorf("image URI and name are required")
	}

	image, err := u.ipfs.Download(ctx, gatewayURL(imageURI))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image for hashing: %w", err)
	}
	imageHash := keccakHex(image)
	mediaType := http.DetectContentType(image)

	nftMetadata := map[string]any{
		"name":        name,
		"description": description,
		"image":       imageURI,
		"attributes":  attributes,
	}
	nftURI, err := u.ipfs.PinJSON(ctx, nftMetadata)
	if err != nil {
		return nil, fmt.Errorf("failed to pin NFT metadata: %w", err)
	}

	ipMetadata := map[string]any{
		"title":       name,
		"description": description,
		"createdAt":   u.now().Unix(),
		"image":       imageURI,
		"imageHash":   imageHash,
		"mediaUrl":    imageURI,
		"mediaHash":   imageHash,
		"mediaType":   mediaType,
	}
	ipURI, err := u.ipfs.PinJSON(ctx, ipMetadata)
	if err != nil {
		return nil, fmt.Errorf("failed to pin IP metadata: %w", err)
	}

	nftHash, err := jsonKeccakHex(nftMetadata)
	if err != nil {
		return nil, err
	}
	ipHash, err := jsonKeccakHex(ipMetadata)
	if err != nil {
		return nil, err
	}

	result := &domain.IPMetadataResult{
		NFTMetadataURI: nftURI,
		IPMetadataURI:  ipURI,
		Registration: domain.RegistrationMetadata{
			IPMetadataURI:   ipURI,
			IPMetadataHash:  ipHash,
			NFTMetadataURI:  nftURI,
			NFTMetadataHash: nftHash,
		},
	}
	u.logger.Info("Pinned IP metadata.",
		slog.String("name", name),
		slog.String("nft_metadata_uri", nftURI),
		slog.String("ip_metadata_uri", ipURI))
	return result, nil
}

// gatewayURL rewrites an ipfs:// URI to its public gateway form; other
// URLs pass through unchanged.
func gatewayURL(uri string) string {
	if rest, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		return ipfsGateway + rest
	}
	return uri
}

// keccakHex returns the 0x-prefixed keccak256 hash of data.
func keccakHex(data []byte) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return fmt.Sprintf("0x%x", h.Sum(nil))
}

// jsonKeccakHex hashes the canonical (sorted-key) JSON encoding of v.
func jsonKeccakHex(v any) (string, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata for hashing: %w", err)
	}
	return keccakHex(encoded), nil
}
