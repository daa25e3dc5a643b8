package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/ppiankov/s3reach/internal/s3"
	"github.com/spf13/cobra"
)

var regionsFlags struct {
	awsProfile string
}

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List enabled AWS regions",
	Long:  `Lists the AWS regions enabled for the current account, for use with --region.`,
	RunE:  runRegions,
}

func init() {
	regionsCmd.Flags().StringVar(&regionsFlags.awsProfile, "aws-profile", "", "AWS profile to use")
}

func runRegions(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := s3.NewClient(ctx, regionsFlags.awsProfile, defaultRegion)
	if err != nil {
		return enhanceError("S3 client initialization", err, 1)
	}

	regions, err := client.ListRegions(ctx)
	if err != nil {
		return enhanceError("region listing", err, 1)
	}

	sort.Strings(regions)
	for _, region := range regions {
		fmt.Println(region)
	}

	return nil
}
