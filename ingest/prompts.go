// Copyright 2026 Civic Archive Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ingest

// metadataPrompt asks for the bibliographic fields of a document. The
// generation adapter truncates the prompt to the model's context window, so
// the document text goes last and only ever loses its tail.
func metadataPrompt(text string) string {
	return "Please extract the following information from a document: " +
		"1.) title, 2.) summary, 3.) level_of_government, 4.) responsible_province, " +
		"5.) responsible_city, 6.) authors, 7.) editors, 8.) publisher, " +
		"9.) publish_date, 10.) publisher_location, 11.) copyright_year, " +
		"12.) ISSN, 13.) ISBN, 14.) languages. " +
		"If the exact title of the document is obvious in the text, then use that, " +
		"alternatively the title should be your most relevant suggestion for the " +
		"document and also be less than 8 words. " +
		"The summary should be concise but still representative of the content of " +
		"the text and also less than 50 words. " +
		"Level of government is one of three options: 'federal', 'provincial', or 'municipal'. " +
		"If the level of government is federal, the responsible province should be Ontario. " +
		"Federal documents are Ottawa's responsibility. And provincial documents are the " +
		"responsibility of the capital city of the responsible_province. Municipal documents " +
		"are the responsibility of that city. " +
		"The authors and editors lists should only contain strings of the respective names " +
		"of authors and editors. The author can also be a person who signed an introductory " +
		"letter at the beginning of the document. " +
		"The publish date should be converted to yyyy-mm-dd format. " +
		"If found, write the ISBN number in this format: X-XXXX-XXXX-X. " +
		"Detected languages should be one or both of these options: 'en', 'fr'. " +
		"Only include a language if a significant portion of the text is in that language. " +
		"You should output the information as JSON. " +
		"Here follows the available document text:\n\n" + text
}

// categoryPrompt asks for the keywords and category fields in a second,
// smaller call. Splitting the two requests keeps each answer shape simple
// enough for the model to hit reliably.
func categoryPrompt(text string) string {
	return "Create metadata fields `keywords` and `category` for a document.\n\n" +
		"Extract the 5 best keywords from a document to aid in indexing and searchability.\n" +
		"Keywords are words or short phrases that are less than 3 words that help to " +
		"categorize and index the document for easier retrieval and searchability in " +
		"databases and search engines. They enable researchers and readers to quickly " +
		"identify the relevant subject matter and scope of the document.\n" +
		"Each keyword entry should not have more than two words.\n" +
		"Don't include keywords represented by the document title.\n\n" +
		"Categorize the document into one of the following categories:\n" +
		"* Financial and Operational Reports\n" +
		"* Research and Analysis\n" +
		"* News and Media\n" +
		"* Policies and Directives\n" +
		"* Strategic and Operational Plans\n" +
		"* Promotional and Educational Material\n\n" +
		"Output the results in JSON format.\nDocument text follows:\n\n" + text
}
