package survey

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"uobsurvey/pkg/utils"
)

// Report stages, in generation order.
const (
	StageExecutiveSummary = "executive_summary"
	StageDetailedReport   = "detailed_report"
	StageGapAnalysis      = "gap_analysis"
	StageRecommendations  = "recommendations"
)

// SectionError names the report stage whose generation failed.
type SectionError struct {
	Stage string
	Err   error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("generating %s: %v", e.Stage, e.Err)
}

// Is lets callers match both the underlying generator error and
// utils.ErrReportGeneration.
func (e *SectionError) Is(target error) bool {
	return target == utils.ErrReportGeneration
}

func (e *SectionError) Unwrap() error { return e.Err }

type sectionSpec struct {
	stage     string
	system    string
	maxTokens int
	build     func(org, transcript string) string
}

const consultantSystem = "You are a senior data infrastructure consultant for regulated banking systems."

var sectionSpecs = []sectionSpec{
	{
		stage:     StageExecutiveSummary,
		system:    consultantSystem + " Generate professional, insightful reports based on survey data.",
		maxTokens: 1500,
		build:     executiveSummaryPrompt,
	},
	{
		stage:     StageDetailedReport,
		system:    consultantSystem + " Generate professional, detailed, and insightful reports based on survey data.",
		maxTokens: 4000,
		build:     detailedReportPrompt,
	},
	{
		stage:     StageGapAnalysis,
		system:    "You are a senior data infrastructure consultant. Identify gaps and contradictions in survey responses.",
		maxTokens: 2000,
		build:     gapAnalysisPrompt,
	},
	{
		stage:     StageRecommendations,
		system:    "You are a senior data infrastructure consultant. Generate detailed, prioritized recommendations with realistic timelines and effort estimates.",
		maxTokens: 3000,
		build:     recommendationsPrompt,
	},
}

const reportTemperature = 0.3

// Assembler turns a submission into the four report sections.
type Assembler struct {
	generator TextGenerator
	logger    *zap.Logger
}

func NewAssembler(generator TextGenerator, logger *zap.Logger) *Assembler {
	if generator == nil {
		generator = NullGenerator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{generator: generator, logger: logger}
}

// Assemble generates the sections one after another from the same transcript.
// The first failing stage aborts the whole operation; partial results are
// never returned.
func (a *Assembler) Assemble(ctx context.Context, s Submission) (ReportSections, error) {
	transcript := FormatTranscript(s)
	org := s.Organization
	if strings.TrimSpace(org) == "" {
		org = "Organization"
	}

	results := make(map[string]string, len(sectionSpecs))
	for _, spec := range sectionSpecs {
		a.logger.Info("generating report section", zap.String("stage", spec.stage), zap.String("submission_id", s.ID))

		text, err := a.generator.Generate(ctx, Prompt{
			System:      spec.system,
			User:        spec.build(org, transcript),
			Temperature: reportTemperature,
			MaxTokens:   spec.maxTokens,
		})
		if err == nil && strings.TrimSpace(text) == "" {
			err = fmt.Errorf("empty response: %w", utils.ErrGeneratorError)
		}
		if err != nil {
			if errors.Is(err, utils.ErrGeneratorUnavailable) {
				return ReportSections{}, err
			}
			return ReportSections{}, &SectionError{Stage: spec.stage, Err: err}
		}
		results[spec.stage] = strings.TrimSpace(text)
	}

	return ReportSections{
		ExecutiveSummary: results[StageExecutiveSummary],
		DetailedReport:   results[StageDetailedReport],
		GapAnalysis:      results[StageGapAnalysis],
		Recommendations:  results[StageRecommendations],
	}, nil
}

func executiveSummaryPrompt(org, transcript string) string {
	return fmt.Sprintf(`Based on the following comprehensive survey responses from %s, generate a professional 1-2 page Executive Summary.

This survey includes THREE critical assessment areas:
- STEP 1: BASELINE ASSESSMENT - Fixed foundational questions about architecture, jobs, ETL, data quality, and reporting
- STEP 2: DEEP DIVE (DYNAMIC QUESTIONS) - Contextual follow-up questions generated based on Step 1 responses
- STEP 3: AI/GENAI DISCOVERY - Infrastructure and governance readiness for AI/ML and GenAI initiatives

Survey Data (ALL STEPS):
%s

Please create an Executive Summary that includes:
1. Overview of current state across all three assessment areas (2-3 sentences)
2. Key strengths identified in Baseline, Deep Dive, and AI/GenAI assessments (3-4 bullet points)
3. Critical challenges and gaps found across all assessment areas (3-4 bullet points)
4. Recommended priority areas based on comprehensive analysis (3-4 bullet points)
5. Expected business impact of improvements on data infrastructure and AI/GenAI capabilities

Format as professional business document. Be specific and reference actual answers from ALL THREE SURVEY SECTIONS.`, org, transcript)
}

func detailedReportPrompt(org, transcript string) string {
	return fmt.Sprintf(`Based on the following comprehensive survey responses from %s, generate a detailed 5-10 page Assessment Report.

This survey includes THREE critical assessment areas:
- STEP 1: BASELINE ASSESSMENT - Foundational questions covering: Architecture & Scale, Job Orchestration, ETL/Development/Tooling, Data Quality/Governance/Testing, Reporting & Direction
- STEP 2: DEEP DIVE (DYNAMIC QUESTIONS) - Context-aware follow-up questions that dig deeper into Step 1 answers
- STEP 3: AI/GENAI DISCOVERY - Infrastructure, governance, and framework readiness for AI/ML and GenAI initiatives

Complete Survey Data (ALL STEPS):
%s

Please create a comprehensive Detailed Report analyzing ALL three survey sections with the following structure:

1. EXECUTIVE OVERVIEW
   - Organization profile and current state across all assessment areas
   - Assessment scope and methodology (Baseline, Deep Dive, AI/GenAI Discovery)

2. ARCHITECTURE & SCALE ASSESSMENT
   - Current technology stack analysis
   - Infrastructure deployment model
   - Data volume and processing capacity
   - Data layer maturity (bronze/silver/gold)

3. JOB ORCHESTRATION & OPERATIONS
   - Orchestration tool landscape
   - Failure analysis and patterns
   - Detection and remediation processes
   - SLA compliance assessment

4. ETL, DEVELOPMENT & TOOLING
   - Technology mix analysis
   - Custom vs vendor code ratio
   - Version control and deployment practices
   - Technical debt assessment

5. DATA QUALITY, GOVERNANCE & TESTING
   - Data lineage and audit traceability
   - BCBS 239 compliance readiness
   - Test automation maturity
   - Data quality processes

6. REPORTING & STRATEGIC DIRECTION
   - Report portfolio analysis
   - Batch vs real-time requirements
   - Success criteria definition
   - Modern platform adoption (Databricks, Snowflake)

7. AI/GENAI INFRASTRUCTURE & READINESS
   - GPU and computing infrastructure assessment
   - LLM access and model strategy (commercial vs open-source)
   - Cloud environment and ML platform availability
   - Data storage for AI/ML workloads
   - Monitoring and observability for AI systems

8. AI/GENAI GOVERNANCE & COMPLIANCE
   - AI Council and governance structure
   - Approval processes and lead times
   - Data privacy and regulatory compliance (GDPR, regulatory requirements)
   - AI Ethics framework and Responsible AI guidelines
   - Change management for AI/GenAI deployments

9. AI/GENAI FRAMEWORKS & STANDARDS
   - Common framework adoption vs custom development
   - Model registry and management systems
   - Testing and quality assurance standards for AI models
   - Documentation and audit trail requirements
   - Integration with CI/CD and DevOps

10. MATURITY ASSESSMENT BY PILLAR
    - Rate each area on 1-5 scale
    - Provide stage: Nascent/Emerging/Developing/Advanced/Leading
    - Consider all three survey stages in maturity assessment

11. KEY FINDINGS & INSIGHTS
    - Top 5 critical findings from comprehensive analysis
    - Industry benchmarking context
    - Cross-pillar dependencies and relationships

Be specific, reference actual survey answers from ALL THREE STEPS, and provide actionable insights.`, org, transcript)
}

func gapAnalysisPrompt(_ string, transcript string) string {
	return fmt.Sprintf(`Based on the following comprehensive survey responses including Baseline Assessment, Deep Dive Questions, and AI/GenAI Discovery, identify and analyze gaps, contradictions, and inconsistencies.

Survey Data (ALL THREE STEPS):
%s

Please provide a thorough gap analysis that includes:

1. IDENTIFIED CONTRADICTIONS
   - List any contradictory statements or conflicting answers across all three survey stages
   - Explain the contradiction
   - Suggest clarification needed

2. CAPABILITY GAPS
   - Areas where stated goals don't match current capabilities
   - Missing capabilities needed for stated objectives (including AI/GenAI readiness)
   - Recommendations to close gaps

3. PROCESS INCONSISTENCIES
   - Inconsistencies in processes or tools across baseline and advanced assessments
   - Areas where manual and automated processes conflict
   - Recommendations for standardization

4. COMPLIANCE GAPS
   - Areas not meeting regulatory requirements
   - BCBS 239 compliance gaps
   - AI/GenAI compliance and governance gaps
   - Risk implications

5. TECHNOLOGY GAPS
   - Misalignment between current and required technology for baseline operations
   - Infrastructure gaps for AI/GenAI initiatives
   - Legacy system constraints
   - Modernization priorities

6. AI/GENAI READINESS GAPS
   - Infrastructure gaps (compute, storage, networking)
   - Governance and compliance readiness gaps
   - Framework and process gaps for GenAI initiatives

Be specific and reference actual survey answers from ALL THREE ASSESSMENT STAGES.`, transcript)
}

func recommendationsPrompt(_ string, transcript string) string {
	return fmt.Sprintf(`Based on the comprehensive survey responses including Baseline Assessment, Deep Dive Questions, and AI/GenAI Discovery, generate prioritized recommendations with a maturity roadmap.

Complete Survey Data (ALL THREE STEPS):
%s

Please provide comprehensive recommendations that include:

1. IMMEDIATE ACTIONS (0-3 months)
   - Quick wins with high impact from baseline and AI/GenAI assessments
   - Low-cost, high-value improvements
   - Foundation for AI/GenAI initiatives
   - Estimated effort and impact

2. SHORT-TERM INITIATIVES (3-6 months)
   - Foundation building for data infrastructure
   - Process improvements from Deep Dive insights
   - AI/GenAI governance framework establishment
   - Tool consolidation
   - Estimated effort and impact

3. MEDIUM-TERM ROADMAP (6-12 months)
   - Major modernization efforts
   - Technology upgrades
   - AI/GenAI infrastructure buildout
   - Platform migrations (Databricks, Snowflake, etc.)
   - Governance and compliance implementation
   - Estimated effort and impact

4. LONG-TERM STRATEGY (12+ months)
   - Strategic transformation
   - Architectural redesign for scalability and AI/GenAI
   - GenAI capability center establishment
   - New capability development
   - Estimated effort and impact

5. MATURITY ROADMAP FOR EACH PILLAR
   For each assessment area (Architecture, Jobs, ETL, Data Quality, Reporting, AI/GenAI), show:
   - Current state (Nascent/Emerging/Developing/Advanced/Leading)
   - Target state (12 months)
   - Target state (24 months)
   - Required initiatives based on survey insights

6. AI/GENAI ENABLEMENT ROADMAP
   - Phase 1: Foundation (governance, compliance, frameworks)
   - Phase 2: Infrastructure (compute, storage, platforms)
   - Phase 3: Capabilities (model registry, monitoring, ops)
   - Phase 4: Advanced (advanced analytics, custom models)

7. SUCCESS METRICS
   - KPIs to track progress across all assessment areas
   - Baseline measurements
   - Target measurements (12-month and 24-month)
   - AI/GenAI capability metrics

8. RISK MITIGATION
   - Key risks in transformation
   - Mitigation strategies based on governance insights
   - Dependencies and constraints
   - AI/GenAI-specific risks and mitigations

Be specific with timelines, effort estimates, and business impact. Reference actual survey answers from ALL THREE ASSESSMENT STAGES in your recommendations.`, transcript)
}
