package generation

// Type labels the purpose of a generation call. It is a closed tag set used
// only for observability grouping; no branching logic in this core depends
// on it.
type Type int

const (
	// TypeGeneric is the fallback for calls without a more specific purpose.
	TypeGeneric Type = iota
	// TypeGuidelineMatching scores guidelines against the conversation state.
	TypeGuidelineMatching
	// TypeGuidelineContinuousMatching re-scores previously matched guidelines.
	TypeGuidelineContinuousMatching
	// TypeGuidelineActionProposer proposes a concrete action for a matched guideline.
	TypeGuidelineActionProposer
	// TypeGuidelineConnectionProposer proposes entailment links between guidelines.
	TypeGuidelineConnectionProposer
	// TypeJourneySelection picks the journey to activate for a session.
	TypeJourneySelection
	// TypeJourneyStructureClassification decides whether a guideline compiles to a journey.
	TypeJourneyStructureClassification
	// TypeJourneyReevaluation re-checks an active journey against new events.
	TypeJourneyReevaluation
	// TypeJourneyNodeSelection picks the next node inside an active journey.
	TypeJourneyNodeSelection
	// TypeToolCalling plans and emits tool calls.
	TypeToolCalling
	// TypeToolCallingBatch plans several tool calls in a single pass.
	TypeToolCallingBatch
	// TypeToolCallingOverlap resolves overlapping tool candidates.
	TypeToolCallingOverlap
	// TypeToolParameterExtraction fills tool parameters from conversation context.
	TypeToolParameterExtraction
	// TypeMessageGeneration composes the outgoing customer message.
	TypeMessageGeneration
	// TypeMessageDraftGeneration produces a draft for human review.
	TypeMessageDraftGeneration
	// TypeMessageRevision revises a previously generated message.
	TypeMessageRevision
	// TypeCannedResponseGeneration instantiates a canned response template.
	TypeCannedResponseGeneration
	// TypeCannedResponseSelection selects among existing canned responses.
	TypeCannedResponseSelection
	// TypeConversationSummarization condenses conversation history.
	TypeConversationSummarization
	// TypeCustomerIntentExtraction extracts the customer's current intent.
	TypeCustomerIntentExtraction
	// TypeAgentIntentionDetection detects what the agent is about to do.
	TypeAgentIntentionDetection
	// TypeDisambiguation generates a clarifying question.
	TypeDisambiguation
	// TypeModeration classifies content for policy violations.
	TypeModeration
	// TypeEmbedding produces vector embeddings.
	TypeEmbedding
)

// String returns the stable snake_case label used in logs and metrics.
func (t Type) String() string {
	switch t {
	case TypeGeneric:
		return "generic"
	case TypeGuidelineMatching:
		return "guideline_matching"
	case TypeGuidelineContinuousMatching:
		return "guideline_continuous_matching"
	case TypeGuidelineActionProposer:
		return "guideline_action_proposer"
	case TypeGuidelineConnectionProposer:
		return "guideline_connection_proposer"
	case TypeJourneySelection:
		return "journey_selection"
	case TypeJourneyStructureClassification:
		return "journey_structure_classification"
	case TypeJourneyReevaluation:
		return "journey_reevaluation"
	case TypeJourneyNodeSelection:
		return "journey_node_selection"
	case TypeToolCalling:
		return "tool_calling"
	case TypeToolCallingBatch:
		return "tool_calling_batch"
	case TypeToolCallingOverlap:
		return "tool_calling_overlap"
	case TypeToolParameterExtraction:
		return "tool_parameter_extraction"
	case TypeMessageGeneration:
		return "message_generation"
	case TypeMessageDraftGeneration:
		return "message_draft_generation"
	case TypeMessageRevision:
		return "message_revision"
	case TypeCannedResponseGeneration:
		return "canned_response_generation"
	case TypeCannedResponseSelection:
		return "canned_response_selection"
	case TypeConversationSummarization:
		return "conversation_summarization"
	case TypeCustomerIntentExtraction:
		return "customer_intent_extraction"
	case TypeAgentIntentionDetection:
		return "agent_intention_detection"
	case TypeDisambiguation:
		return "disambiguation"
	case TypeModeration:
		return "moderation"
	case TypeEmbedding:
		return "embedding"
	default:
		return "unknown"
	}
}
