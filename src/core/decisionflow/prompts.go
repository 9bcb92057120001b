package decisionflow

const structureSystemPrompt = `You are an expert at parsing and structuring user queries related to insurance claims, contracts, or policies.
Extract the key details from the user's query and return them as a clean JSON object.
The keys should be in snake_case.

Example:
Query: "46-year-old male, knee surgery in Pune, 3-month-old insurance policy"
Output: {
    "age": 46,
    "gender": "male",
    "procedure": "knee surgery",
    "location": "Pune",
    "policy_duration_months": 3
}

Return ONLY the JSON object, no explanations.`

const structurePromptTemplate = `Now, parse the following query:
Query: "{{.Query}}"
Output:`

const decisionSystemPrompt = `You are an expert claims processing agent. Your task is to make a decision based on a user's situation and the provided policy clauses.
Analyze the user's details and evaluate them against the relevant clauses.

Your Task:
1.  Carefully read each clause and determine if it applies to the user's situation.
2.  Based on your analysis, decide whether the claim should be "Approved", "Rejected", or "Pending Review".
3.  If a payout amount is mentioned or can be calculated from the clauses, state the amount. If not applicable, set the amount to "N/A".
4.  Provide a clear justification for your decision, explicitly referencing the clause number(s) (e.g., "as per Clause 2 and Clause 4") that support your reasoning.

Output Format:
Return your response as a single, valid JSON object with the following keys:
- "decision": (string) "Approved", "Rejected", or "Pending Review"
- "amount": (string or number) The calculated payout amount or "N/A"
- "justification": (string) A detailed explanation of the decision, referencing specific clauses.

Example Response:
{
    "decision": "Approved",
    "amount": "N/A",
    "justification": "The policy covers knee surgery after a waiting period of 24 months as per Clause 3. Since the user's policy is 36 months old, the procedure is covered."
}`

const decisionPromptTemplate = `User's Details:
` + "```json" + `
{{.QueryDetails}}
` + "```" + `

Relevant Policy Clauses:
` + "```" + `
{{.Clauses}}
` + "```" + `

Now, generate the response for the given details and clauses.`
