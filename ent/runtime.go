// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rainzero1960/paperscout/ent/customsummary"
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/editedsummary"
	"github.com/rainzero1960/paperscout/ent/paperchatmessage"
	"github.com/rainzero1960/paperscout/ent/paperchatsession"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/ent/prompt"
	"github.com/rainzero1960/paperscout/ent/promptgroup"
	"github.com/rainzero1960/paperscout/ent/researchmessage"
	"github.com/rainzero1960/paperscout/ent/researchsession"
	"github.com/rainzero1960/paperscout/ent/schema"
	"github.com/rainzero1960/paperscout/ent/user"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	customsummaryFields := schema.CustomSummary{}.Fields()
	_ = customsummaryFields
	// customsummaryDescAffinity is the schema descriptor for affinity field.
	customsummaryDescAffinity := customsummaryFields[7].Descriptor()
	// customsummary.DefaultAffinity holds the default value on creation for the affinity field.
	customsummary.DefaultAffinity = customsummaryDescAffinity.Default.(int)
	// customsummaryDescCreatedAt is the schema descriptor for created_at field.
	customsummaryDescCreatedAt := customsummaryFields[10].Descriptor()
	// customsummary.DefaultCreatedAt holds the default value on creation for the created_at field.
	customsummary.DefaultCreatedAt = customsummaryDescCreatedAt.Default.(func() time.Time)
	// customsummaryDescUpdatedAt is the schema descriptor for updated_at field.
	customsummaryDescUpdatedAt := customsummaryFields[11].Descriptor()
	// customsummary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customsummary.DefaultUpdatedAt = customsummaryDescUpdatedAt.Default.(func() time.Time)
	// customsummary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customsummary.UpdateDefaultUpdatedAt = customsummaryDescUpdatedAt.UpdateDefault.(func() time.Time)
	defaultsummaryFields := schema.DefaultSummary{}.Fields()
	_ = defaultsummaryFields
	// defaultsummaryDescAffinity is the schema descriptor for affinity field.
	defaultsummaryDescAffinity := defaultsummaryFields[5].Descriptor()
	// defaultsummary.DefaultAffinity holds the default value on creation for the affinity field.
	defaultsummary.DefaultAffinity = defaultsummaryDescAffinity.Default.(int)
	// defaultsummaryDescCreatedAt is the schema descriptor for created_at field.
	defaultsummaryDescCreatedAt := defaultsummaryFields[8].Descriptor()
	// defaultsummary.DefaultCreatedAt holds the default value on creation for the created_at field.
	defaultsummary.DefaultCreatedAt = defaultsummaryDescCreatedAt.Default.(func() time.Time)
	// defaultsummaryDescUpdatedAt is the schema descriptor for updated_at field.
	defaultsummaryDescUpdatedAt := defaultsummaryFields[9].Descriptor()
	// defaultsummary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	defaultsummary.DefaultUpdatedAt = defaultsummaryDescUpdatedAt.Default.(func() time.Time)
	// defaultsummary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	defaultsummary.UpdateDefaultUpdatedAt = defaultsummaryDescUpdatedAt.UpdateDefault.(func() time.Time)
	editedsummaryFields := schema.EditedSummary{}.Fields()
	_ = editedsummaryFields
	// editedsummaryDescCreatedAt is the schema descriptor for created_at field.
	editedsummaryDescCreatedAt := editedsummaryFields[6].Descriptor()
	// editedsummary.DefaultCreatedAt holds the default value on creation for the created_at field.
	editedsummary.DefaultCreatedAt = editedsummaryDescCreatedAt.Default.(func() time.Time)
	// editedsummaryDescUpdatedAt is the schema descriptor for updated_at field.
	editedsummaryDescUpdatedAt := editedsummaryFields[7].Descriptor()
	// editedsummary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	editedsummary.DefaultUpdatedAt = editedsummaryDescUpdatedAt.Default.(func() time.Time)
	// editedsummary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	editedsummary.UpdateDefaultUpdatedAt = editedsummaryDescUpdatedAt.UpdateDefault.(func() time.Time)
	paperchatmessageFields := schema.PaperChatMessage{}.Fields()
	_ = paperchatmessageFields
	// paperchatmessageDescCreatedAt is the schema descriptor for created_at field.
	paperchatmessageDescCreatedAt := paperchatmessageFields[5].Descriptor()
	// paperchatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	paperchatmessage.DefaultCreatedAt = paperchatmessageDescCreatedAt.Default.(func() time.Time)
	paperchatsessionFields := schema.PaperChatSession{}.Fields()
	_ = paperchatsessionFields
	// paperchatsessionDescCreatedAt is the schema descriptor for created_at field.
	paperchatsessionDescCreatedAt := paperchatsessionFields[5].Descriptor()
	// paperchatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	paperchatsession.DefaultCreatedAt = paperchatsessionDescCreatedAt.Default.(func() time.Time)
	// paperchatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	paperchatsessionDescUpdatedAt := paperchatsessionFields[6].Descriptor()
	// paperchatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	paperchatsession.DefaultUpdatedAt = paperchatsessionDescUpdatedAt.Default.(func() time.Time)
	// paperchatsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	paperchatsession.UpdateDefaultUpdatedAt = paperchatsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	papermetadataFields := schema.PaperMetadata{}.Fields()
	_ = papermetadataFields
	// papermetadataDescCreatedAt is the schema descriptor for created_at field.
	papermetadataDescCreatedAt := papermetadataFields[7].Descriptor()
	// papermetadata.DefaultCreatedAt holds the default value on creation for the created_at field.
	papermetadata.DefaultCreatedAt = papermetadataDescCreatedAt.Default.(func() time.Time)
	// papermetadataDescUpdatedAt is the schema descriptor for updated_at field.
	papermetadataDescUpdatedAt := papermetadataFields[8].Descriptor()
	// papermetadata.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	papermetadata.DefaultUpdatedAt = papermetadataDescUpdatedAt.Default.(func() time.Time)
	// papermetadata.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	papermetadata.UpdateDefaultUpdatedAt = papermetadataDescUpdatedAt.UpdateDefault.(func() time.Time)
	promptFields := schema.Prompt{}.Fields()
	_ = promptFields
	// promptDescIsActive is the schema descriptor for is_active field.
	promptDescIsActive := promptFields[6].Descriptor()
	// prompt.DefaultIsActive holds the default value on creation for the is_active field.
	prompt.DefaultIsActive = promptDescIsActive.Default.(bool)
	// promptDescCreatedAt is the schema descriptor for created_at field.
	promptDescCreatedAt := promptFields[7].Descriptor()
	// prompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompt.DefaultCreatedAt = promptDescCreatedAt.Default.(func() time.Time)
	// promptDescUpdatedAt is the schema descriptor for updated_at field.
	promptDescUpdatedAt := promptFields[8].Descriptor()
	// prompt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prompt.DefaultUpdatedAt = promptDescUpdatedAt.Default.(func() time.Time)
	// prompt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prompt.UpdateDefaultUpdatedAt = promptDescUpdatedAt.UpdateDefault.(func() time.Time)
	promptgroupFields := schema.PromptGroup{}.Fields()
	_ = promptgroupFields
	// promptgroupDescCreatedAt is the schema descriptor for created_at field.
	promptgroupDescCreatedAt := promptgroupFields[9].Descriptor()
	// promptgroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptgroup.DefaultCreatedAt = promptgroupDescCreatedAt.Default.(func() time.Time)
	// promptgroupDescUpdatedAt is the schema descriptor for updated_at field.
	promptgroupDescUpdatedAt := promptgroupFields[10].Descriptor()
	// promptgroup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	promptgroup.DefaultUpdatedAt = promptgroupDescUpdatedAt.Default.(func() time.Time)
	// promptgroup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	promptgroup.UpdateDefaultUpdatedAt = promptgroupDescUpdatedAt.UpdateDefault.(func() time.Time)
	researchmessageFields := schema.ResearchMessage{}.Fields()
	_ = researchmessageFields
	// researchmessageDescIsIntermediate is the schema descriptor for is_intermediate field.
	researchmessageDescIsIntermediate := researchmessageFields[4].Descriptor()
	// researchmessage.DefaultIsIntermediate holds the default value on creation for the is_intermediate field.
	researchmessage.DefaultIsIntermediate = researchmessageDescIsIntermediate.Default.(bool)
	// researchmessageDescCreatedAt is the schema descriptor for created_at field.
	researchmessageDescCreatedAt := researchmessageFields[7].Descriptor()
	// researchmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchmessage.DefaultCreatedAt = researchmessageDescCreatedAt.Default.(func() time.Time)
	researchsessionFields := schema.ResearchSession{}.Fields()
	_ = researchsessionFields
	// researchsessionDescCreatedAt is the schema descriptor for created_at field.
	researchsessionDescCreatedAt := researchsessionFields[5].Descriptor()
	// researchsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchsession.DefaultCreatedAt = researchsessionDescCreatedAt.Default.(func() time.Time)
	// researchsessionDescUpdatedAt is the schema descriptor for updated_at field.
	researchsessionDescUpdatedAt := researchsessionFields[6].Descriptor()
	// researchsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	researchsession.DefaultUpdatedAt = researchsessionDescUpdatedAt.Default.(func() time.Time)
	// researchsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	researchsession.UpdateDefaultUpdatedAt = researchsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescPoints is the schema descriptor for points field.
	userDescPoints := userFields[3].Descriptor()
	// user.DefaultPoints holds the default value on creation for the points field.
	user.DefaultPoints = userDescPoints.Default.(int)
	// userDescAffinitySakura is the schema descriptor for affinity_sakura field.
	userDescAffinitySakura := userFields[5].Descriptor()
	// user.DefaultAffinitySakura holds the default value on creation for the affinity_sakura field.
	user.DefaultAffinitySakura = userDescAffinitySakura.Default.(int)
	// userDescAffinityMiyabi is the schema descriptor for affinity_miyabi field.
	userDescAffinityMiyabi := userFields[6].Descriptor()
	// user.DefaultAffinityMiyabi holds the default value on creation for the affinity_miyabi field.
	user.DefaultAffinityMiyabi = userDescAffinityMiyabi.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[8].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	userpaperlinkFields := schema.UserPaperLink{}.Fields()
	_ = userpaperlinkFields
	// userpaperlinkDescCreatedAt is the schema descriptor for created_at field.
	userpaperlinkDescCreatedAt := userpaperlinkFields[8].Descriptor()
	// userpaperlink.DefaultCreatedAt holds the default value on creation for the created_at field.
	userpaperlink.DefaultCreatedAt = userpaperlinkDescCreatedAt.Default.(func() time.Time)
	// userpaperlinkDescUpdatedAt is the schema descriptor for updated_at field.
	userpaperlinkDescUpdatedAt := userpaperlinkFields[9].Descriptor()
	// userpaperlink.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userpaperlink.DefaultUpdatedAt = userpaperlinkDescUpdatedAt.Default.(func() time.Time)
	// userpaperlink.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userpaperlink.UpdateDefaultUpdatedAt = userpaperlinkDescUpdatedAt.UpdateDefault.(func() time.Time)
}
